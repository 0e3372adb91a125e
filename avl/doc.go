// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree of unique keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree (a leaf is 1, an
// absent sub-tree is 0) and every node satisfies:
//
//   |height(left) - height(right)| <= 1
//
// Children are owned exclusively by their parent; there are no
// parent pointers.  Insert and delete record the path of child links
// they descend through and walk it back to repair heights and rotate.
//
// Inserting a key that is already present does nothing.  When a node
// with two children is deleted the key of its in-order predecessor
// (or successor when the right side is taller) is copied into it and
// the donor node is removed instead.
package avl
