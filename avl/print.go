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

// Print - write an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (p *Node) Print(w io.Writer, printData bool) int {
	return printTree(w, p, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *Node, prefix string, br branch, printData bool) int {
	if p.IsEmpty() {
		return 0
	}
	rd := 0
	ld := 0
	if !p.right.IsEmpty() {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	f := " "
	if p.frozen {
		f = "*"
	}
	if printData {
		fmt.Fprintf(w, "%v → %v %s h:%d\n", p.key, p.value, f, p.height)
	} else {
		fmt.Fprintf(w, "%v %s\n", p.key, f)
	}
	if !p.left.IsEmpty() {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
