// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Ascend - call fn for each key from lowest to highest until fn
// returns false
//
// the tree must not be modified during the walk
func (tree *Tree[K]) Ascend(fn func(key K) bool) {
	stack := make([]*node[K], 0, tree.Height())
	p := tree.root
	for nil != p || 0 != len(stack) {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(p.key) {
			return
		}
		p = p.right
	}
}

// Descend - call fn for each key from highest to lowest until fn
// returns false
func (tree *Tree[K]) Descend(fn func(key K) bool) {
	stack := make([]*node[K], 0, tree.Height())
	p := tree.root
	for nil != p || 0 != len(stack) {
		for nil != p {
			stack = append(stack, p)
			p = p.right
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(p.key) {
			return
		}
		p = p.left
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
