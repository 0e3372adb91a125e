// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/budget"
	"github.com/bitmark-inc/avltree/fault"
)

// step results
const (
	resultInserted  = "inserted"
	resultDuplicate = "duplicate"
	resultRefused   = "allocation failure"
	resultRemoved   = "removed"
	resultNotFound  = "not found"
	resultPresent   = "present"
	resultAbsent    = "absent"
	resultEmpty     = "empty"
	resultOK        = "ok"
)

// Run - execute a script against a new tree
//
// the tree is verified after every change; the first failed check
// stops the run with an error wrapping fault.ErrWorkloadCheckFailed
func Run(script Script, log *logger.L) (*Report, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	if "" != script.LevelDB && BytesKeys != script.KeyType {
		return nil, fault.ErrUnsupportedSourceType
	}

	switch script.KeyType {
	case IntKeys, "":
		return run(script, intKeys, nil, log)

	case StringKeys:
		return run(script, stringKeys, nil, log)

	case BytesKeys:
		var seed [][]byte
		if "" != script.LevelDB {
			prefix, err := hex.DecodeString(script.Prefix)
			if nil != err {
				return nil, fmt.Errorf("%w: prefix %q: %s", fault.ErrInvalidKey, script.Prefix, err)
			}
			seed, err = databaseKeys(script.LevelDB, prefix)
			if nil != err {
				return nil, err
			}
			log.Infof("database: %q  keys: %d", script.LevelDB, len(seed))
		}
		return run(script, bytesKeys, seed, log)

	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKeyType, script.KeyType)
	}
}

// state of one run
type runner[K any] struct {
	keys   keyType[K]
	tree   *avl.Tree[K]
	report *Report
}

func run[K any](script Script, keys keyType[K], seed []K, log *logger.L) (*Report, error) {

	if script.Random.Count > 0 && script.Random.Range < script.Random.Count {
		return nil, fault.ErrRandomRangeTooSmall
	}

	b := budget.Unlimited()
	if 0 != script.NodeLimit {
		b = budget.NewLimited(script.NodeLimit)
	}

	tree, err := avl.NewWithComparator(keys.compare, avl.WithBudget(b), avl.WithLogger(log))
	if nil != err {
		return nil, err
	}
	defer tree.Destroy()

	r := &runner[K]{
		keys:   keys,
		tree:   tree,
		report: &Report{},
	}

	for _, key := range seed {
		if _, err := r.insert(key); nil != err {
			return nil, err
		}
	}

	var random []K
	if script.Random.Count > 0 {
		rng := rand.New(rand.NewSource(script.Random.Seed))
		for _, i := range sample(rng, script.Random.Count, script.Random.Range) {
			key := keys.fromInt(i)
			result, err := r.insert(key)
			if nil != err {
				return nil, err
			}

			// refused keys are not in the tree, so are not removed later
			if resultInserted == result {
				random = append(random, key)
			}
		}
		log.Infof("random inserts: %d  height: %d", len(random), tree.Height())

		// removal order differs from insertion order
		rng.Shuffle(len(random), func(i, j int) {
			random[i], random[j] = random[j], random[i]
		})
	}

	for i, operation := range script.Operations {
		step, err := r.apply(operation)
		if nil != err {
			return nil, fmt.Errorf("operation[%d]: %w", i+1, err)
		}
		log.Debugf("%s %q: %s", step.Op, step.Key, step.Result)
		r.report.Steps = append(r.report.Steps, step)
	}

	if script.Random.Remove {
		for _, key := range random {
			if _, err := r.remove(key); nil != err {
				return nil, err
			}
		}
		log.Infof("random removes: %d  height: %d", len(random), tree.Height())
	}

	report := r.report
	report.Height = tree.Height()
	report.Count = tree.Count()
	report.NodesInUse = b.InUse()
	report.Keys = make([]string, 0, tree.Count())
	tree.Ascend(func(key K) bool {
		report.Keys = append(report.Keys, keys.format(key))
		return true
	})

	if script.Print {
		var picture strings.Builder
		tree.Print(&picture, true)
		report.Picture = picture.String()
	}

	log.Infof("count: %d  height: %d  nodes: %d", report.Count, report.Height, report.NodesInUse)
	return report, nil
}

// count distinct values from [0, n) in random order
//
// Floyd's selection keeps memory proportional to count however large
// n is
func sample(rng *rand.Rand, count int, n int) []int {
	chosen := make(map[int]struct{}, count)
	values := make([]int, 0, count)
	for j := n - count; j < n; j += 1 {
		t := rng.Intn(j + 1)
		if _, ok := chosen[t]; ok {
			t = j
		}
		chosen[t] = struct{}{}
		values = append(values, t)
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

// run a single scripted operation
func (r *runner[K]) apply(operation Operation) (Step, error) {
	step := Step{
		Op:  operation.Op,
		Key: operation.Key,
	}

	switch operation.Op {
	case OpInsert, OpRemove, OpContains:
		key, err := r.parse(operation.Key)
		if nil != err {
			return step, err
		}

		switch operation.Op {
		case OpInsert:
			step.Result, err = r.insert(key)
		case OpRemove:
			step.Result, err = r.remove(key)
		default:
			step.Result = resultAbsent
			if r.tree.Contains(key) {
				step.Result = resultPresent
			}
		}
		if nil != err {
			return step, err
		}

	case OpMin, OpMax:
		get := r.tree.Min
		if OpMax == operation.Op {
			get = r.tree.Max
		}
		step.Result = resultEmpty
		if key, ok := get(); ok {
			step.Result = r.keys.format(key)
		}

	case OpHeight:
		step.Result = strconv.Itoa(r.tree.Height())

	case OpCheck:
		if err := r.check(); nil != err {
			return step, err
		}
		step.Result = resultOK

	default:
		return step, fmt.Errorf("%w: %q", fault.ErrInvalidOperation, operation.Op)
	}
	return step, nil
}

func (r *runner[K]) parse(s string) (K, error) {
	if "" == s {
		var zero K
		return zero, fault.ErrMissingKey
	}
	key, err := r.keys.parse(s)
	if nil != err {
		return key, fmt.Errorf("%w: %q: %s", fault.ErrInvalidKey, s, err)
	}
	return key, nil
}

func (r *runner[K]) insert(key K) (string, error) {
	inserted, err := r.tree.Insert(key)
	if errors.Is(err, fault.ErrAllocationFailure) {
		r.report.AllocationFailures += 1
		return resultRefused, nil
	}
	if nil != err {
		return "", err
	}
	if !inserted {
		r.report.Duplicates += 1
		return resultDuplicate, nil
	}
	r.report.Inserted += 1
	return resultInserted, r.check()
}

func (r *runner[K]) remove(key K) (string, error) {
	if !r.tree.Remove(key) {
		r.report.NotFound += 1
		return resultNotFound, nil
	}
	r.report.Removed += 1
	return resultRemoved, r.check()
}

func (r *runner[K]) check() error {
	err := r.tree.Check()
	if nil != err {
		fault.Criticalf("tree check failed: %s", err)
		return fmt.Errorf("%w: %s", fault.ErrWorkloadCheckFailed, err)
	}
	return nil
}
