// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict

import (
	"github.com/bitmark-inc/immutable/avl"
	"github.com/bitmark-inc/immutable/fault"
)

// ReadOnlyDict - adapter presenting a legacy mutable-map surface
//
// reads pass straight through to the wrapped dictionary; every
// mutating call fails with ErrCollectionIsReadOnly and is never
// partially applied
type ReadOnlyDict struct {
	dict *Dict
}

// AsReadOnly - wrap a dictionary in the legacy surface
func AsReadOnly(d *Dict) *ReadOnlyDict {
	return &ReadOnlyDict{dict: d}
}

// Get - read the value stored under a key
func (r *ReadOnlyDict) Get(key avl.Item) (interface{}, error) {
	return r.dict.Get(key)
}

// ContainsKey - true when the key is present
func (r *ReadOnlyDict) ContainsKey(key avl.Item) bool {
	return r.dict.ContainsKey(key)
}

// Count - number of key/value pairs
func (r *ReadOnlyDict) Count() int {
	return r.dict.Count()
}

// Keys - all keys in ascending order
func (r *ReadOnlyDict) Keys() []avl.Item {
	return r.dict.Keys()
}

// Enumerate - ascending order enumerator
func (r *ReadOnlyDict) Enumerate() *Enumerator {
	return r.dict.Enumerate()
}

// Put - always fails, the collection is read-only
func (r *ReadOnlyDict) Put(key avl.Item, value interface{}) error {
	return fault.ErrCollectionIsReadOnly
}

// Delete - always fails, the collection is read-only
func (r *ReadOnlyDict) Delete(key avl.Item) error {
	return fault.ErrCollectionIsReadOnly
}

// Clear - always fails, the collection is read-only
func (r *ReadOnlyDict) Clear() error {
	return fault.ErrCollectionIsReadOnly
}
