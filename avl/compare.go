// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb/comparer"
)

// Comparator - three way comparison: negative if a < b, zero if
// equal, positive if a > b
//
// must be a strict total order, otherwise the tree's ordering and
// balance are undefined
type Comparator[K any] func(a, b K) int

// Item - a key that carries its own natural ordering
type Item[K any] interface {
	Compare(K) int // for left/right ordering of items
}

// Ordered - natural ordering of integers, floats, runes and strings
func Ordered[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}

// Natural - ordering supplied by the key's own Compare method
func Natural[K Item[K]](a, b K) int {
	return a.Compare(b)
}

// Bytes - lexicographic byte ordering, as used by LevelDB keys
func Bytes(a, b []byte) int {
	return comparer.DefaultComparer.Compare(a, b)
}

// Reverse - invert an ordering
func Reverse[K any](compare Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return compare(b, a)
	}
}

// natural ordering for K, or nil if K does not implement Item[K]
func natural[K any]() Comparator[K] {
	k := reflect.TypeOf((*K)(nil)).Elem()
	item := reflect.TypeOf((*Item[K])(nil)).Elem()
	if !k.Implements(item) {
		return nil
	}
	return func(a, b K) int {
		return any(a).(Item[K]).Compare(b)
	}
}
