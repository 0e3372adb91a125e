// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, balance, cached heights and the key count
//
// returns nil for a consistent tree, otherwise an error wrapping one
// of the fault errors and naming the offending key
func (tree *Tree[K]) Check() error {
	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: nodes: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: consistency checker, low and high bound the keys allowed
// in this sub-tree; returns node count and height
func (tree *Tree[K]) check(p *node[K], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && tree.compare(*low, p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, p.key, *high)
	}

	nl, hl, err := tree.check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := tree.check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	if b := hl - hr; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %+d", fault.ErrUnbalanced, p.key, b)
	}
	return 1 + nl + nr, h, nil
}
