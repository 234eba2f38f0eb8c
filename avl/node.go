// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"
)

// Item - a key must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// KeyComparer - key ordering function
// returns negative, zero or positive like Compare
type KeyComparer func(a Item, b Item) int

// ValueEqualer - value equality function
type ValueEqualer func(a interface{}, b interface{}) bool

// NaturalKeyComparer - order keys by their own Compare function
func NaturalKeyComparer(a Item, b Item) int {
	return a.Compare(b)
}

// NaturalValueEqualer - deep structural equality of values
func NaturalValueEqualer(a interface{}, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

// Node - a node in the tree
//
// a frozen node must never be modified in place; all routines below
// go through the mutate helpers which clone a frozen node instead
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // 1 + max of the child heights
	frozen bool        // set once the node becomes shared
}

// Empty - the canonical empty node
//
// shared by every tree as the base case of all recursion; it is
// permanently frozen and its height is zero
var Empty = &Node{frozen: true}

// create a fresh unfrozen leaf
func newNode(key Item, value interface{}) *Node {
	return &Node{
		left:   Empty,
		right:  Empty,
		key:    key,
		value:  value,
		height: 1,
	}
}

// IsEmpty - true when this is the empty node
func (p *Node) IsEmpty() bool {
	return 0 == p.height
}

// IsFrozen - true once the node has been made immutable
func (p *Node) IsFrozen() bool {
	return p.frozen
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Left - left sub-tree, Empty for a leaf
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree, Empty for a leaf
func (p *Node) Right() *Node {
	return p.right
}

// Height - stored height, zero only for the empty node
func (p *Node) Height() int {
	return p.height
}

// replace the children, cloning first if the node is frozen
func (p *Node) mutate(left *Node, right *Node) *Node {
	if p.frozen {
		p = &Node{key: p.key, value: p.value}
	}
	p.left = left
	p.right = right
	p.height = 1 + maxHeight(left, right)
	return p
}

// replace just the value, cloning first if the node is frozen
func (p *Node) mutateValue(value interface{}) *Node {
	if p.frozen {
		return &Node{
			left:   p.left,
			right:  p.right,
			key:    p.key,
			value:  value,
			height: p.height,
		}
	}
	p.value = value
	return p
}

// replace everything, used when splicing a successor into a deleted
// slot; clones first if the node is frozen
func (p *Node) mutateItem(key Item, value interface{}, left *Node, right *Node) *Node {
	if p.frozen {
		p = &Node{}
	}
	p.key = key
	p.value = value
	p.left = left
	p.right = right
	p.height = 1 + maxHeight(left, right)
	return p
}

func maxHeight(left *Node, right *Node) int {
	if left.height > right.height {
		return left.height
	}
	return right.height
}
