// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict

import (
	"github.com/bitmark-inc/immutable/avl"
	"github.com/bitmark-inc/immutable/fault"
)

// Builder - mutable staging view over a dictionary
//
// batches many edits without allocating one wrapper per edit; owned
// by a single go routine, sharing one across go routines needs
// external synchronisation
//
// the working tree starts out fully frozen and shared with the
// source dictionary; the first edit along any path clones away from
// the frozen nodes and later edits on that path mutate in place
type Builder struct {
	root    *avl.Node
	count   int
	compare avl.KeyComparer
	equal   avl.ValueEqualer
	version int // bumped on every structural edit
}

// ToBuilder - O(1) mutable view sharing the current frozen root
func (d *Dict) ToBuilder() *Builder {
	return &Builder{
		root:    d.root,
		count:   d.count,
		compare: d.compare,
		equal:   d.equal,
	}
}

// ToImmutable - freeze the working tree and wrap it
//
// the builder stays usable, its next edit simply clones away from
// the now frozen nodes
func (b *Builder) ToImmutable() *Dict {
	b.root.Freeze()
	if 0 == b.count {
		return emptyWith(b.compare, b.equal)
	}
	return &Dict{
		root:    b.root,
		count:   b.count,
		compare: b.compare,
		equal:   b.equal,
	}
}

// Add - insert a new key
// fails with ErrKeyAlreadyExists on a duplicate
func (b *Builder) Add(key avl.Item, value interface{}) error {
	if nil == key {
		return fault.ErrKeyIsNil
	}
	root, _, _, err := b.root.Insert(key, value, false, b.compare, b.equal)
	if nil != err {
		return err
	}
	b.root = root
	b.count += 1
	b.version += 1
	return nil
}

// SetItem - insert or overwrite a key
// reports whether an existing value was replaced
func (b *Builder) SetItem(key avl.Item, value interface{}) (bool, error) {
	if nil == key {
		return false, fault.ErrKeyIsNil
	}
	root, mutated, replaced, err := b.root.Insert(key, value, true, b.compare, b.equal)
	if nil != err {
		return false, err
	}
	if !mutated { // equal value, not a structural edit
		return false, nil
	}
	b.root = root
	if !replaced {
		b.count += 1
	}
	b.version += 1
	return replaced, nil
}

// Remove - remove a key, false when absent
func (b *Builder) Remove(key avl.Item) (bool, error) {
	if nil == key {
		return false, fault.ErrKeyIsNil
	}
	root, removed := b.root.Remove(key, b.compare)
	if !removed {
		return false, nil
	}
	b.root = root
	b.count -= 1
	b.version += 1
	return true, nil
}

// Clear - drop all pairs
func (b *Builder) Clear() {
	b.root = avl.Empty
	b.count = 0
	b.version += 1
}

// Count - number of key/value pairs
func (b *Builder) Count() int {
	return b.count
}

// Get - read the value stored under a key
// fails with ErrKeyNotFound for an absent key
func (b *Builder) Get(key avl.Item) (interface{}, error) {
	if nil == key {
		return nil, fault.ErrKeyIsNil
	}
	node := b.root.Search(key, b.compare)
	if nil == node {
		return nil, fault.ErrKeyNotFound
	}
	return node.Value(), nil
}

// TryGetValue - read a value, false for an absent key
func (b *Builder) TryGetValue(key avl.Item) (interface{}, bool) {
	if nil == key {
		return nil, false
	}
	node := b.root.Search(key, b.compare)
	if nil == node {
		return nil, false
	}
	return node.Value(), true
}

// ContainsKey - true when the key is present
func (b *Builder) ContainsKey(key avl.Item) bool {
	_, ok := b.TryGetValue(key)
	return ok
}

// Enumerate - ascending order enumerator over the working tree
//
// any structural edit to the builder invalidates the enumerator:
// the next MoveNext or Reset fails with ErrCollectionWasModified
func (b *Builder) Enumerate() *Enumerator {
	return newEnumerator(b.root, b)
}
