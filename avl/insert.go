// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
//
// returns true if the key was added and false if an equal key was
// already present.  The only error is the budget refusing a new
// node; the tree is then unchanged.
func (tree *Tree[K]) Insert(key K) (bool, error) {

	// the links followed from the root down to the insertion point
	path := make([]**node[K], 0, tree.Height())

	pp := &tree.root
	for nil != *pp {
		p := *pp
		c := tree.compare(key, p.key)
		switch {
		case c < 0:
			path = append(path, pp)
			pp = &p.left
		case c > 0:
			path = append(path, pp)
			pp = &p.right
		default:
			return false, nil
		}
	}

	n, err := tree.newNode(key)
	if nil != err {
		return false, err
	}
	*pp = n
	tree.count += 1

	// a sub-tree that keeps its previous height, either because it
	// absorbed the new node or because a rotation restored it,
	// cannot change anything above it
	for i := len(path) - 1; i >= 0; i -= 1 {
		pp := path[i]
		h := (*pp).height
		*pp = tree.rebalance(*pp)
		if h == (*pp).height {
			break
		}
	}
	return true, nil
}
