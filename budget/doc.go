// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package budget - node budgets for balanced trees
//
// A budget is consulted before a tree creates a node and told when a
// node is destroyed.  A limited budget refuses nodes once its maximum
// is in use, which a tree reports as an allocation failure.
//
// Counters are atomic so one budget can be shared by several trees,
// but each tree itself must still be used by a single go routine.
package budget
