// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "workload-test")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}
	logConfig := logger.Configuration{
		Directory: dir,
		File:      "workload.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func TestScriptedOperations(t *testing.T) {
	script := workload.Script{
		KeyType: workload.IntKeys,
		Operations: []workload.Operation{
			{Op: workload.OpMin},
			{Op: workload.OpInsert, Key: "20"},
			{Op: workload.OpInsert, Key: "10"},
			{Op: workload.OpInsert, Key: "30"},
			{Op: workload.OpInsert, Key: "10"},
			{Op: workload.OpContains, Key: "30"},
			{Op: workload.OpContains, Key: "40"},
			{Op: workload.OpMin},
			{Op: workload.OpMax},
			{Op: workload.OpHeight},
			{Op: workload.OpRemove, Key: "20"},
			{Op: workload.OpRemove, Key: "20"},
			{Op: workload.OpCheck},
		},
	}

	report, err := workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "run error")

	expected := []string{
		"empty",
		"inserted",
		"inserted",
		"inserted",
		"duplicate",
		"present",
		"absent",
		"10",
		"30",
		"2",
		"removed",
		"not found",
		"ok",
	}
	if assert.Equal(t, len(expected), len(report.Steps), "step count") {
		for i, step := range report.Steps {
			assert.Equal(t, expected[i], step.Result, "step[%d] %s %s", i, step.Op, step.Key)
		}
	}

	assert.Equal(t, 3, report.Inserted, "inserted")
	assert.Equal(t, 1, report.Duplicates, "duplicates")
	assert.Equal(t, 1, report.Removed, "removed")
	assert.Equal(t, 1, report.NotFound, "not found")
	assert.Equal(t, 0, report.AllocationFailures, "allocation failures")
	assert.Equal(t, 2, report.Count, "count")
	assert.Equal(t, 2, report.Height, "height")
	assert.Equal(t, uint64(2), report.NodesInUse, "nodes in use")
	assert.Equal(t, []string{"10", "30"}, report.Keys, "keys")
	assert.Equal(t, "", report.Picture, "picture")
}

func TestRandomInsertAndRemove(t *testing.T) {
	script := workload.Script{
		KeyType: workload.StringKeys,
		Random: workload.Random{
			Count:  500,
			Range:  2000,
			Seed:   42,
			Remove: true,
		},
	}

	report, err := workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "run error")
	assert.Equal(t, 500, report.Inserted, "inserted")
	assert.Equal(t, 500, report.Removed, "removed")
	assert.Equal(t, 0, report.Duplicates, "duplicates")
	assert.Equal(t, 0, report.Count, "count")
	assert.Equal(t, 0, report.Height, "height")
	assert.Equal(t, uint64(0), report.NodesInUse, "nodes in use")
	assert.Empty(t, report.Keys, "keys")
}

func TestRandomKeysAreSorted(t *testing.T) {
	script := workload.Script{
		KeyType: workload.StringKeys,
		Random: workload.Random{
			Count: 100,
			Range: 100,
			Seed:  7,
		},
		Print: true,
	}

	report, err := workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "run error")
	assert.Equal(t, 100, report.Count, "count")
	assert.Equal(t, "0000000000", report.Keys[0], "first key")
	assert.Equal(t, "0000000099", report.Keys[99], "last key")
	assert.IsIncreasing(t, report.Keys, "key order")
	assert.LessOrEqual(t, report.Height, 9, "height")
	assert.Contains(t, report.Picture, "|------+ ", "picture root")
}

func TestNodeLimit(t *testing.T) {
	script := workload.Script{
		KeyType:   workload.IntKeys,
		NodeLimit: 2,
		Operations: []workload.Operation{
			{Op: workload.OpInsert, Key: "1"},
			{Op: workload.OpInsert, Key: "2"},
			{Op: workload.OpInsert, Key: "3"},
			{Op: workload.OpRemove, Key: "1"},
			{Op: workload.OpInsert, Key: "3"},
		},
	}

	report, err := workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "run error")
	assert.Equal(t, "allocation failure", report.Steps[2].Result, "refused step")
	assert.Equal(t, "inserted", report.Steps[4].Result, "insert after remove")
	assert.Equal(t, 1, report.AllocationFailures, "allocation failures")
	assert.Equal(t, []string{"2", "3"}, report.Keys, "keys")
	assert.Equal(t, uint64(2), report.NodesInUse, "nodes in use")
}

func TestRandomHugeRange(t *testing.T) {
	script := workload.Script{
		KeyType: workload.IntKeys,
		Random: workload.Random{
			Count: 10,
			Range: 1000000000000,
			Seed:  11,
		},
	}

	report, err := workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "run error")
	assert.Equal(t, 10, report.Inserted, "inserted")
	assert.Equal(t, 0, report.Duplicates, "duplicates")
	assert.Equal(t, 10, report.Count, "count")
	assert.Equal(t, uint64(10), report.NodesInUse, "nodes in use")
}

func TestRandomRemoveSkipsRefusedKeys(t *testing.T) {
	script := workload.Script{
		KeyType:   workload.IntKeys,
		NodeLimit: 5,
		Random: workload.Random{
			Count:  10,
			Range:  10,
			Seed:   5,
			Remove: true,
		},
	}

	report, err := workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "run error")
	assert.Equal(t, 5, report.Inserted, "inserted")
	assert.Equal(t, 5, report.AllocationFailures, "allocation failures")
	assert.Equal(t, 5, report.Removed, "removed")
	assert.Equal(t, 0, report.NotFound, "not found")
	assert.Equal(t, 0, report.Count, "count")
	assert.Equal(t, uint64(0), report.NodesInUse, "nodes in use")
}

func TestDatabaseKeys(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys.leveldb")

	db, err := leveldb.OpenFile(dir, nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	stored := [][]byte{
		{0x01, 0x02},
		{0x01, 0x01},
		{0x02, 0xff},
		{0x01, 0x03},
		{0x03},
	}
	for _, key := range stored {
		if err := db.Put(key, []byte("value"), nil); nil != err {
			t.Fatalf("leveldb put error: %s", err)
		}
	}
	db.Close()

	script := workload.Script{
		KeyType: workload.BytesKeys,
		LevelDB: dir,
		Operations: []workload.Operation{
			{Op: workload.OpContains, Key: "02ff"},
			{Op: workload.OpInsert, Key: "0103"},
			{Op: workload.OpRemove, Key: "03"},
		},
	}

	report, err := workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "run error")
	assert.Equal(t, "present", report.Steps[0].Result, "contains")
	assert.Equal(t, "duplicate", report.Steps[1].Result, "insert")
	assert.Equal(t, "removed", report.Steps[2].Result, "remove")

	expected := []string{
		base58.Encode([]byte{0x01, 0x01}),
		base58.Encode([]byte{0x01, 0x02}),
		base58.Encode([]byte{0x01, 0x03}),
		base58.Encode([]byte{0x02, 0xff}),
	}
	assert.Equal(t, expected, report.Keys, "keys")

	script.Prefix = "01"
	script.Operations = nil
	report, err = workload.Run(script, logger.New("test"))
	assert.Nil(t, err, "prefix run error")
	assert.Equal(t, 3, report.Count, "prefix count")
}

func TestRunErrors(t *testing.T) {
	log := logger.New("test")

	items := []struct {
		script workload.Script
		err    error
	}{
		{
			script: workload.Script{KeyType: "float"},
			err:    fault.ErrInvalidKeyType,
		},
		{
			script: workload.Script{KeyType: workload.IntKeys, LevelDB: "/nonexistent"},
			err:    fault.ErrUnsupportedSourceType,
		},
		{
			script: workload.Script{KeyType: workload.BytesKeys, LevelDB: "/nonexistent/keys.leveldb"},
			err:    fault.ErrDatabaseOpenFailed,
		},
		{
			script: workload.Script{Random: workload.Random{Count: 10, Range: 5}},
			err:    fault.ErrRandomRangeTooSmall,
		},
		{
			script: workload.Script{Operations: []workload.Operation{{Op: "rotate", Key: "1"}}},
			err:    fault.ErrInvalidOperation,
		},
		{
			script: workload.Script{Operations: []workload.Operation{{Op: workload.OpInsert}}},
			err:    fault.ErrMissingKey,
		},
		{
			script: workload.Script{Operations: []workload.Operation{{Op: workload.OpRemove, Key: "x"}}},
			err:    fault.ErrInvalidKey,
		},
		{
			script: workload.Script{KeyType: workload.BytesKeys, Operations: []workload.Operation{{Op: workload.OpInsert, Key: "zz"}}},
			err:    fault.ErrInvalidKey,
		},
	}

	for i, item := range items {
		report, err := workload.Run(item.script, log)
		assert.ErrorIs(t, err, item.err, "%d: error", i)
		assert.Nil(t, report, "%d: report", i)
	}

	_, err := workload.Run(workload.Script{}, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}
