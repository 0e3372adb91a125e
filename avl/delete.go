// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree
//
// returns false if the key was not present
func (tree *Tree[K]) Remove(key K) bool {

	// the links followed from the root to the parent of the node
	// that is physically removed
	path := make([]**node[K], 0, tree.Height())

	pp := &tree.root
	for {
		p := *pp
		if nil == p { // key not in tree
			return false
		}
		c := tree.compare(key, p.key)
		if 0 == c {
			break
		}
		path = append(path, pp)
		if c < 0 {
			pp = &p.left
		} else {
			pp = &p.right
		}
	}

	q := *pp
	if nil != q.left && nil != q.right {
		pp = tree.donor(pp, &path)
		q.key = (*pp).key
	}

	// at most one child: splice it into the parent's link
	r := *pp
	if nil == r.left {
		*pp = r.right
	} else {
		*pp = r.left
	}
	tree.freeNode(r)
	tree.count -= 1

	// a deletion can unbalance every ancestor, so never stop early
	for i := len(path) - 1; i >= 0; i -= 1 {
		*path[i] = tree.rebalance(*path[i])
	}
	return true
}

// find the link to the donor for a node with two children,
// extending the path down to the donor's parent
//
// the predecessor is preferred unless the right branch is taller;
// either way the donor has at most one child
func (tree *Tree[K]) donor(qq **node[K], path *[]**node[K]) **node[K] {
	q := *qq
	*path = append(*path, qq)

	if height(q.left) >= height(q.right) {
		rr := &q.left
		for nil != (*rr).right {
			*path = append(*path, rr)
			rr = &(*rr).right
		}
		return rr
	}

	rr := &q.right
	for nil != (*rr).left {
		*path = append(*path, rr)
		rr = &(*rr).left
	}
	return rr
}
