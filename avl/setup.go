// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/budget.go -package=mocks github.com/bitmark-inc/avltree/avl Budget

// Budget - accounts for node creation and destruction
//
// Reserve is called once before each node is created; an error
// aborts the insert.  Release is called once as each node is
// destroyed.
type Budget interface {
	Reserve() error
	Release()
}

// Tree - type to hold the root node of a tree
type Tree[K any] struct {
	root    *node[K]
	count   int
	compare Comparator[K]
	pool    *node[K] // free list of reclaimed nodes, linked through left
	budget  Budget
	log     *logger.L
}

// Option - optional tree setting
type Option func(*settings)

type settings struct {
	budget Budget
	log    *logger.L
}

// WithBudget - limit node creation by a budget
func WithBudget(b Budget) Option {
	return func(s *settings) {
		s.budget = b
	}
}

// WithLogger - trace rotations and allocation failures to a logger channel
func WithLogger(log *logger.L) Option {
	return func(s *settings) {
		s.log = log
	}
}

// New - create an initially empty tree ordered by the natural
// ordering of K
func New[K cmp.Ordered](options ...Option) *Tree[K] {
	return newTree(Ordered[K], options)
}

// NewWithComparator - create an initially empty tree ordered by compare
//
// if compare is nil the keys must implement Item to supply their own
// ordering, otherwise fault.ErrMissingComparator is returned
func NewWithComparator[K any](compare Comparator[K], options ...Option) (*Tree[K], error) {
	if nil == compare {
		compare = natural[K]()
		if nil == compare {
			return nil, fault.ErrMissingComparator
		}
	}
	return newTree(compare, options), nil
}

func newTree[K any](compare Comparator[K], options []Option) *Tree[K] {
	s := settings{}
	for _, option := range options {
		option(&s)
	}
	return &Tree[K]{
		root:    nil,
		count:   0,
		compare: compare,
		budget:  s.budget,
		log:     s.log,
	}
}

// Destroy - release every node, children before their parent
//
// the tree is left empty and may be reused
func (tree *Tree[K]) Destroy() {
	if nil == tree.root {
		return
	}
	// iterative post-order: a node is released once both of its
	// children have been
	stack := make([]*node[K], 0, tree.root.height+1)
	var last *node[K]
	p := tree.root
	for nil != p || 0 != len(stack) {
		if nil != p {
			stack = append(stack, p)
			p = p.left
			continue
		}
		top := stack[len(stack)-1]
		if nil != top.right && last != top.right {
			p = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		tree.freeNode(top)
		last = top
	}
	tree.root = nil
	tree.count = 0
	tree.pool = nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - height of the tree, zero if empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}
