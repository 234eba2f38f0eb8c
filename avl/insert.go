// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/immutable/fault"
)

// Insert - add or update a key
//
// returns the possibly updated root; when the tree is frozen the old
// root is untouched and only the path down to the key is cloned
//
// replace false: fails with ErrKeyAlreadyExists on a duplicate key
// replace true: overwrites; when the new value compares equal to the
// stored one the tree is returned unchanged with mutated false to
// preserve sharing
//
// returns: root, mutated, replaced, error
func (p *Node) Insert(key Item, value interface{}, replace bool, compare KeyComparer, equal ValueEqualer) (*Node, bool, bool, error) {
	if p.IsEmpty() {
		return newNode(key, value), true, false, nil
	}

	c := compare(key, p.key)
	switch {
	case c < 0:
		left, mutated, replaced, err := p.left.Insert(key, value, replace, compare, equal)
		if nil != err {
			return p, false, false, err
		}
		if !mutated {
			return p, false, replaced, nil
		}
		return p.mutate(left, p.right).rebalance(), true, replaced, nil

	case c > 0:
		right, mutated, replaced, err := p.right.Insert(key, value, replace, compare, equal)
		if nil != err {
			return p, false, false, err
		}
		if !mutated {
			return p, false, replaced, nil
		}
		return p.mutate(p.left, right).rebalance(), true, replaced, nil

	default: // key already present
		if !replace {
			return p, false, false, fault.ErrKeyAlreadyExists
		}
		if equal(p.value, value) {
			return p, false, false, nil
		}
		return p.mutateValue(value), true, true, nil
	}
}

// difference of the child heights: positive means right heavy
func (p *Node) balance() int {
	return p.right.height - p.left.height
}

// restore the AVL property at this node after one child changed
// height by at most one
func (p *Node) rebalance() *Node {
	switch b := p.balance(); {
	case b >= 2: // right branch has grown
		if p.right.balance() < 0 {
			return p.rotateRightLeft()
		}
		return p.rotateLeft()
	case b <= -2: // left branch has grown
		if p.left.balance() > 0 {
			return p.rotateLeftRight()
		}
		return p.rotateRight()
	}
	return p
}

// single RR rotation
func (p *Node) rotateLeft() *Node {
	p1 := p.right
	return p1.mutate(p.mutate(p.left, p1.left), p1.right)
}

// single LL rotation
func (p *Node) rotateRight() *Node {
	p1 := p.left
	return p1.mutate(p1.left, p.mutate(p1.right, p.right))
}

// double RL rotation
func (p *Node) rotateRightLeft() *Node {
	return p.mutate(p.left, p.right.rotateRight()).rotateLeft()
}

// double LR rotation
func (p *Node) rotateLeftRight() *Node {
	return p.mutate(p.left.rotateLeft(), p.right).rotateRight()
}
