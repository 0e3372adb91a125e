// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package budget

import (
	"sync/atomic"

	"github.com/bitmark-inc/avltree/fault"
)

// Limited - a budget that allows at most Maximum() nodes in use
type Limited struct {
	inUse   uint64
	maximum uint64
}

// unlimited is a Limited whose maximum can never be reached
const unlimited = ^uint64(0)

// Unlimited - create a budget that never refuses a node
func Unlimited() *Limited {
	return &Limited{
		maximum: unlimited,
	}
}

// NewLimited - create a budget allowing up to maximum nodes
func NewLimited(maximum uint64) *Limited {
	return &Limited{
		maximum: maximum,
	}
}

// Reserve - account for a new node
func (l *Limited) Reserve() error {
	for {
		n := atomic.LoadUint64(&l.inUse)
		if n >= l.maximum {
			return fault.ErrAllocationFailure
		}
		if atomic.CompareAndSwapUint64(&l.inUse, n, n+1) {
			return nil
		}
	}
}

// Release - account for a destroyed node
func (l *Limited) Release() {
	if atomic.AddUint64(&l.inUse, ^uint64(0)) == unlimited {
		fault.Panic("budget: release without reserve")
	}
}

// InUse - number of nodes currently reserved
func (l *Limited) InUse() uint64 {
	return atomic.LoadUint64(&l.inUse)
}

// Maximum - the limit set at creation
func (l *Limited) Maximum() uint64 {
	return l.maximum
}

// IsZero - true if no nodes are reserved
func (l *Limited) IsZero() bool {
	return atomic.LoadUint64(&l.inUse) == 0
}
