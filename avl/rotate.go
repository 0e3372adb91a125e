// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func height[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func (p *node[K]) fixHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// height(left) - height(right)
func (p *node[K]) balance() int {
	return height(p.left) - height(p.right)
}

// single LL rotation: the left child becomes the sub-tree root
//
//       p            l
//      / \          / \
//     l   c   →    a   p
//    / \              / \
//   a   b            b   c
func rotateRight[K any](p *node[K]) *node[K] {
	l := p.left
	p.left = l.right
	l.right = p
	p.fixHeight()
	l.fixHeight()
	return l
}

// single RR rotation: mirror of rotateRight
func rotateLeft[K any](p *node[K]) *node[K] {
	r := p.right
	p.right = r.left
	r.left = p
	p.fixHeight()
	r.fixHeight()
	return r
}

// double LR rotation
func rotateLeftRight[K any](p *node[K]) *node[K] {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// double RL rotation
func rotateRightLeft[K any](p *node[K]) *node[K] {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}

// restore the balance of a sub-tree whose children are both
// balanced and differ in height by at most two, returning the new
// sub-tree root
//
// the heavy child's own balance selects single or double rotation:
// a child leaning the opposite way needs the double form.  A child
// with zero balance only occurs after a delete and takes the single
// rotation.
func (tree *Tree[K]) rebalance(p *node[K]) *node[K] {
	p.fixHeight()
	switch p.balance() {
	case +2: // left branch too tall
		if p.left.balance() >= 0 {
			tree.trace("LL", p)
			return rotateRight(p)
		}
		tree.trace("LR", p)
		return rotateLeftRight(p)
	case -2: // right branch too tall
		if p.right.balance() <= 0 {
			tree.trace("RR", p)
			return rotateLeft(p)
		}
		tree.trace("RL", p)
		return rotateRightLeft(p)
	}
	return p
}

func (tree *Tree[K]) trace(rotation string, p *node[K]) {
	if nil != tree.log {
		tree.log.Tracef("%s rotation at: %v  height: %d", rotation, p.key, p.height)
	}
}
