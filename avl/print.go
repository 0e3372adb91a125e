// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree,
// right branches above left so it reads as the tree turned on its side
//
// returns the depth of the tree
func (tree *Tree[K]) Print(w io.Writer, printHeights bool) int {
	return printTree(w, tree.root, "", root, printHeights)
}

// internal print - returns the maximum depth of the tree
func printTree[K any](w io.Writer, p *node[K], prefix string, br branch, printHeights bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printHeights)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printHeights {
		fmt.Fprintf(w, "%v h:%d %+2d\n", p.key, p.height, p.balance())
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printHeights)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
