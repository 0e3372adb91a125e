// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// how to order, parse, generate and display one kind of key
type keyType[K any] struct {
	compare avl.Comparator[K]
	parse   func(string) (K, error)
	fromInt func(int) K
	format  func(K) string
}

var intKeys = keyType[int]{
	compare: avl.Ordered[int],
	parse:   strconv.Atoi,
	fromInt: func(i int) int { return i },
	format:  strconv.Itoa,
}

// random string keys are zero padded so string order matches numeric order
var stringKeys = keyType[string]{
	compare: avl.Ordered[string],
	parse:   func(s string) (string, error) { return s, nil },
	fromInt: func(i int) string { return fmt.Sprintf("%010d", i) },
	format:  func(s string) string { return s },
}

// binary keys are read as hex and displayed as base58
var bytesKeys = keyType[[]byte]{
	compare: avl.Bytes,
	parse:   hex.DecodeString,
	fromInt: func(i int) []byte {
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, uint64(i))
		return b
	},
	format: base58.Encode,
}

// read every key of an existing database, optionally restricted to
// those starting with prefix
func databaseKeys(directory string, prefix []byte) ([][]byte, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: true,
		ReadOnly:       true,
	}

	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, fmt.Errorf("%w: %q: %s", fault.ErrDatabaseOpenFailed, directory, err)
	}
	defer db.Close()

	var searchRange *ldb_util.Range
	if 0 != len(prefix) {
		searchRange = ldb_util.BytesPrefix(prefix)
	}

	keys := make([][]byte, 0, 256)
	iter := db.NewIterator(searchRange, nil)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()

		dataKey := make([]byte, len(key))
		copy(dataKey, key)
		keys = append(keys, dataKey)
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, err
	}
	return keys, nil
}
