// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckHeight - verify the stored heights and the balance rule
func (p *Node) CheckHeight() bool {
	if p.IsEmpty() {
		return true
	}
	if !p.left.CheckHeight() || !p.right.CheckHeight() {
		return false
	}
	h := 1 + maxHeight(p.left, p.right)
	if h != p.height {
		fmt.Printf("height fail at node: %v   actual: %d  expected: %d\n", p.key, p.height, h)
		return false
	}
	b := p.balance()
	if b < -1 || b > 1 {
		fmt.Printf("balance fail at node: %v   balance: %d\n", p.key, b)
		return false
	}
	return true
}

// CheckOrder - verify strictly ascending in-order keys
func (p *Node) CheckOrder(compare KeyComparer) bool {
	_, ok := checkOrder(p, compare, nil)
	return ok
}

// internal: in-order walk carrying the previously visited key
func checkOrder(p *Node, compare KeyComparer, last Item) (Item, bool) {
	if p.IsEmpty() {
		return last, true
	}
	last, ok := checkOrder(p.left, compare, last)
	if !ok {
		return last, false
	}
	if nil != last && compare(last, p.key) >= 0 {
		fmt.Printf("order fail at node: %v   previous: %v\n", p.key, last)
		return last, false
	}
	return checkOrder(p.right, compare, p.key)
}

// CheckFrozen - verify that no frozen node has an unfrozen child
func (p *Node) CheckFrozen() bool {
	if p.IsEmpty() {
		return true
	}
	if p.frozen && (!p.left.frozen || !p.right.frozen) {
		fmt.Printf("frozen fail at node: %v\n", p.key)
		return false
	}
	return p.left.CheckFrozen() && p.right.CheckFrozen()
}

// Count - number of nodes in the sub-tree, O(n) so only for checks
func (p *Node) Count() int {
	if p.IsEmpty() {
		return 0
	}
	return 1 + p.left.Count() + p.right.Count()
}
