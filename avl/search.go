// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if a key equal to key is in the tree
func (tree *Tree[K]) Contains(key K) bool {
	return nil != tree.search(key)
}

// Search - find a specific key, returning the stored key
func (tree *Tree[K]) Search(key K) (K, bool) {
	p := tree.search(key)
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

func (tree *Tree[K]) search(key K) *node[K] {
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Min - return the lowest key
func (tree *Tree[K]) Min() (K, bool) {
	p := tree.root.first()
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

// Max - return the highest key
func (tree *Tree[K]) Max() (K, bool) {
	p := tree.root.last()
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

// internal: lowest node in a sub-tree
func (p *node[K]) first() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K]) last() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
