// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K any] struct {
	left   *node[K] // left sub-tree
	right  *node[K] // right sub-tree
	key    K        // key part for ordering
	height int      // height of this sub-tree, a leaf is 1
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
//
// nothing is allocated if the budget refuses
func (tree *Tree[K]) newNode(key K) (*node[K], error) {
	if nil != tree.budget {
		if err := tree.budget.Reserve(); nil != err {
			if nil != tree.log {
				tree.log.Warnf("allocate node for: %v  error: %s", key, err)
			}
			return nil, err
		}
	}

	p := tree.pool
	if nil == p {
		return &node[K]{
			key:    key,
			height: 1,
		}, nil
	}
	tree.pool = p.left
	p.left = nil // ensure freelist pointer is cleared
	p.key = key
	p.height = 1
	return p, nil
}

// reclaim a node and keep it in the pool
func (tree *Tree[K]) freeNode(p *node[K]) {
	var zero K
	p.key = zero // do not keep the key reachable
	p.right = nil
	p.height = 0
	p.left = tree.pool // use as free list pointer
	tree.pool = p

	if nil != tree.budget {
		tree.budget.Release()
	}
}
