// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns nil when the key is not present
func (p *Node) Search(key Item, compare KeyComparer) *Node {
	if p.IsEmpty() {
		return nil
	}

	c := compare(key, p.key)
	switch {
	case c < 0:
		return p.left.Search(key, compare)
	case c > 0:
		return p.right.Search(key, compare)
	default:
		return p
	}
}

// First - return the node with the lowest key value
// returns nil for an empty tree
func (p *Node) First() *Node {
	if p.IsEmpty() {
		return nil
	}
	return p.first()
}

// internal: lowest node in a non-empty sub-tree
func (p *Node) first() *Node {
	for !p.left.IsEmpty() {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
// returns nil for an empty tree
func (p *Node) Last() *Node {
	if p.IsEmpty() {
		return nil
	}
	for !p.right.IsEmpty() {
		p = p.right
	}
	return p
}
