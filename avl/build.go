// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Pair - one key/value element of a bulk operation
type Pair struct {
	Key   Item
	Value interface{}
}

// BuildSorted - build a minimum height tree from sorted pairs
//
// the pairs must be strictly ascending and free of duplicates; the
// tree is built around the middle element in O(n) so no rebalancing
// is ever needed
//
// the resulting nodes are unfrozen, callers publishing the tree must
// Freeze it first
func BuildSorted(pairs []Pair) *Node {
	if 0 == len(pairs) {
		return Empty
	}
	middle := len(pairs) / 2
	p := newNode(pairs[middle].Key, pairs[middle].Value)
	return p.mutate(BuildSorted(pairs[:middle]), BuildSorted(pairs[middle+1:]))
}
