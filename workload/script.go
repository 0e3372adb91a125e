// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

// key types
const (
	IntKeys    = "int"
	StringKeys = "string"
	BytesKeys  = "bytes" // scripted keys are hex
)

// operation names
const (
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpContains = "contains"
	OpMin      = "min"
	OpMax      = "max"
	OpHeight   = "height"
	OpCheck    = "check"
)

// Script - everything needed to run a workload
type Script struct {
	KeyType string `gluamapper:"key_type" json:"key_type"`

	// zero is unlimited
	NodeLimit uint64 `gluamapper:"node_limit" json:"node_limit"`

	// directory of an existing database whose keys are inserted, and
	// an optional hex prefix restricting those keys
	LevelDB string `gluamapper:"leveldb" json:"leveldb"`
	Prefix  string `gluamapper:"leveldb_prefix" json:"leveldb_prefix"`

	Random     Random      `gluamapper:"random" json:"random"`
	Operations []Operation `gluamapper:"operations" json:"operations"`
	Print      bool        `gluamapper:"print" json:"print"`
}

// Random - insert Count distinct keys drawn from [0, Range)
// and optionally remove them all again in a different order after
// the scripted operations
type Random struct {
	Count  int   `gluamapper:"count" json:"count"`
	Range  int   `gluamapper:"range" json:"range"`
	Seed   int64 `gluamapper:"seed" json:"seed"`
	Remove bool  `gluamapper:"remove" json:"remove"`
}

// Operation - a single scripted step
type Operation struct {
	Op  string `gluamapper:"op" json:"op"`
	Key string `gluamapper:"key" json:"key"`
}

// Step - outcome of one scripted operation
type Step struct {
	Op     string `json:"op"`
	Key    string `json:"key,omitempty"`
	Result string `json:"result"`
}

// Report - totals and final state after a workload
type Report struct {
	Inserted           int      `json:"inserted"`
	Duplicates         int      `json:"duplicates"`
	Removed            int      `json:"removed"`
	NotFound           int      `json:"not_found"`
	AllocationFailures int      `json:"allocation_failures"`
	Steps              []Step   `json:"steps"`
	Height             int      `json:"height"`
	Count              int      `json:"count"`
	NodesInUse         uint64   `json:"nodes_in_use"`
	Keys               []string `json:"keys"`
	Picture            string   `json:"-"`
}
