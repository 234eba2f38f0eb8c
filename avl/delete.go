// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - remove a key if it is present
//
// returns the possibly updated root and whether a node was removed;
// an absent key leaves the tree untouched
func (p *Node) Remove(key Item, compare KeyComparer) (*Node, bool) {
	if p.IsEmpty() { // key not in tree
		return p, false
	}

	c := compare(key, p.key)
	switch {
	case c < 0:
		left, removed := p.left.Remove(key, compare)
		if !removed {
			return p, false
		}
		return p.mutate(left, p.right).rebalance(), true

	case c > 0:
		right, removed := p.right.Remove(key, compare)
		if !removed {
			return p, false
		}
		return p.mutate(p.left, right).rebalance(), true

	default: // found: remove p
		if p.right.IsEmpty() {
			return p.left, true
		}
		if p.left.IsEmpty() {
			return p.right, true
		}
		// two children: replace with the in-order successor, the
		// leftmost node of the right sub-tree, then remove that
		// node from the right sub-tree
		successor := p.right.first()
		right, _ := p.right.Remove(successor.key, compare)
		return p.mutateItem(successor.key, successor.value, p.left, right).rebalance(), true
	}
}
