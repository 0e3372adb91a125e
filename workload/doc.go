// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive a balanced tree from a script
//
// A script selects the key type, optionally seeds the tree from the
// keys of a LevelDB database and from random keys, then applies a
// list of operations.  The tree is checked after every change and a
// report of the outcomes is returned.
package workload
