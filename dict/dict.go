// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict

import (
	"io"

	"github.com/bitmark-inc/immutable/avl"
	"github.com/bitmark-inc/immutable/fault"
)

// Add - insert a new key
//
// fails with ErrKeyAlreadyExists when the key is already present,
// use SetItem to overwrite; a failed add never publishes a new
// wrapper
func (d *Dict) Add(key avl.Item, value interface{}) (*Dict, error) {
	if nil == key {
		return d, fault.ErrKeyIsNil
	}
	root, _, _, err := d.root.Insert(key, value, false, d.compare, d.equal)
	if nil != err {
		return d, err
	}
	root.Freeze()
	return d.derive(root, d.count+1), nil
}

// SetItem - insert or overwrite a key
//
// reports whether an existing value was replaced; when the stored
// value already compares equal the very same wrapper is returned to
// preserve sharing
func (d *Dict) SetItem(key avl.Item, value interface{}) (*Dict, bool, error) {
	if nil == key {
		return d, false, fault.ErrKeyIsNil
	}
	root, mutated, replaced, err := d.root.Insert(key, value, true, d.compare, d.equal)
	if nil != err {
		return d, false, err
	}
	if !mutated {
		return d, false, nil
	}
	count := d.count
	if !replaced {
		count += 1
	}
	root.Freeze()
	return d.derive(root, count), replaced, nil
}

// Remove - remove a key
//
// removing an absent key is a no-op returning the same wrapper
func (d *Dict) Remove(key avl.Item) (*Dict, error) {
	if nil == key {
		return d, fault.ErrKeyIsNil
	}
	root, removed := d.root.Remove(key, d.compare)
	if !removed {
		return d, nil
	}
	root.Freeze()
	return d.derive(root, d.count-1), nil
}

// Clear - drop all pairs keeping the current comparers
func (d *Dict) Clear() *Dict {
	if 0 == d.count {
		return d
	}
	return emptyWith(d.compare, d.equal)
}

// Get - read the value stored under a key
// fails with ErrKeyNotFound for an absent key
func (d *Dict) Get(key avl.Item) (interface{}, error) {
	if nil == key {
		return nil, fault.ErrKeyIsNil
	}
	node := d.root.Search(key, d.compare)
	if nil == node {
		return nil, fault.ErrKeyNotFound
	}
	return node.Value(), nil
}

// TryGetValue - read a value, false for an absent key
func (d *Dict) TryGetValue(key avl.Item) (interface{}, bool) {
	if nil == key {
		return nil, false
	}
	node := d.root.Search(key, d.compare)
	if nil == node {
		return nil, false
	}
	return node.Value(), true
}

// TryGetKey - fetch the stored key that compares equal to the
// argument; useful when the comparer treats distinct keys as equal
func (d *Dict) TryGetKey(key avl.Item) (avl.Item, bool) {
	if nil == key {
		return nil, false
	}
	node := d.root.Search(key, d.compare)
	if nil == node {
		return nil, false
	}
	return node.Key(), true
}

// GetValueOrDefault - read a value falling back to a default
func (d *Dict) GetValueOrDefault(key avl.Item, defaultValue interface{}) interface{} {
	if value, ok := d.TryGetValue(key); ok {
		return value
	}
	return defaultValue
}

// ContainsKey - true when the key is present
func (d *Dict) ContainsKey(key avl.Item) bool {
	_, ok := d.TryGetValue(key)
	return ok
}

// ContainsValue - scan for a value, O(n)
func (d *Dict) ContainsValue(value interface{}) bool {
	found := false
	d.Range(func(_ avl.Item, v interface{}) bool {
		if d.equal(v, value) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Contains - true when the exact key/value pair is present
func (d *Dict) Contains(key avl.Item, value interface{}) bool {
	stored, ok := d.TryGetValue(key)
	return ok && d.equal(stored, value)
}

// First - the lowest key and its value
func (d *Dict) First() (avl.Item, interface{}, bool) {
	node := d.root.First()
	if nil == node {
		return nil, nil, false
	}
	return node.Key(), node.Value(), true
}

// Last - the highest key and its value
func (d *Dict) Last() (avl.Item, interface{}, bool) {
	node := d.root.Last()
	if nil == node {
		return nil, nil, false
	}
	return node.Key(), node.Value(), true
}

// Range - call f for each pair in ascending key order until f
// returns false
func (d *Dict) Range(f func(key avl.Item, value interface{}) bool) {
	rangeNodes(d.root, f)
}

func rangeNodes(p *avl.Node, f func(key avl.Item, value interface{}) bool) bool {
	if p.IsEmpty() {
		return true
	}
	if !rangeNodes(p.Left(), f) {
		return false
	}
	if !f(p.Key(), p.Value()) {
		return false
	}
	return rangeNodes(p.Right(), f)
}

// Keys - all keys in ascending order
func (d *Dict) Keys() []avl.Item {
	keys := make([]avl.Item, 0, d.count)
	d.Range(func(key avl.Item, _ interface{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values - all values in ascending key order
func (d *Dict) Values() []interface{} {
	values := make([]interface{}, 0, d.count)
	d.Range(func(_ avl.Item, value interface{}) bool {
		values = append(values, value)
		return true
	})
	return values
}

// ToArray - materialise the full ordered contents
// this is the cold-path projection used by debuggers and visualisers
func (d *Dict) ToArray() []avl.Pair {
	pairs := make([]avl.Pair, 0, d.count)
	d.Range(func(key avl.Item, value interface{}) bool {
		pairs = append(pairs, avl.Pair{Key: key, Value: value})
		return true
	})
	return pairs
}

// CopyTo - copy the ordered contents into a caller supplied buffer
// fails with ErrDestinationTooSmall without copying anything
func (d *Dict) CopyTo(destination []avl.Pair) error {
	if len(destination) < d.count {
		return fault.ErrDestinationTooSmall
	}
	i := 0
	d.Range(func(key avl.Item, value interface{}) bool {
		destination[i] = avl.Pair{Key: key, Value: value}
		i += 1
		return true
	})
	return nil
}

// Equal - content equality under this dictionary's comparers
func (d *Dict) Equal(other *Dict) bool {
	if d == other {
		return true
	}
	if nil == other || d.count != other.count {
		return false
	}
	mine := d.ToArray()
	theirs := other.ToArray()
	for i, pair := range mine {
		if 0 != d.compare(pair.Key, theirs[i].Key) {
			return false
		}
		if !d.equal(pair.Value, theirs[i].Value) {
			return false
		}
	}
	return true
}

// Enumerate - ascending order enumerator
// the caller must Dispose it to return the stack buffer to the pool
func (d *Dict) Enumerate() *Enumerator {
	return newEnumerator(d.root, nil)
}

// Print - write an ASCII representation of the backing tree
// returns the tree depth
func (d *Dict) Print(w io.Writer, printData bool) int {
	return d.root.Print(w, printData)
}
