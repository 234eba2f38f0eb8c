// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict

import (
	"sort"

	"github.com/bitmark-inc/immutable/avl"
	"github.com/bitmark-inc/immutable/fault"
)

// AddRange - insert a batch of new keys
//
// fails with ErrKeyAlreadyExists on any pre-existing key or any
// duplicate within the batch; on failure nothing is published and
// the receiver is unaffected
func (d *Dict) AddRange(pairs []avl.Pair) (*Dict, error) {
	return d.insertRange(pairs, false)
}

// SetItems - upsert a batch of keys, later duplicates win
func (d *Dict) SetItems(pairs []avl.Pair) (*Dict, error) {
	return d.insertRange(pairs, true)
}

func (d *Dict) insertRange(pairs []avl.Pair, replace bool) (*Dict, error) {
	if 0 == len(pairs) {
		return d, nil
	}
	for _, pair := range pairs {
		if nil == pair.Key {
			return d, fault.ErrKeyIsNil
		}
	}

	// starting from empty it is cheaper to sort once and build a
	// minimum height tree than to run n sequential inserts
	if 0 == d.count {
		return d.bulkBuild(pairs, replace)
	}

	root := d.root
	count := d.count
	for _, pair := range pairs {
		var mutated, replaced bool
		var err error
		root, mutated, replaced, err = root.Insert(pair.Key, pair.Value, replace, d.compare, d.equal)
		if nil != err {
			return d, err
		}
		if mutated && !replaced {
			count += 1
		}
	}
	if root == d.root { // every item was an equal-value no-op
		return d, nil
	}
	root.Freeze()
	return d.derive(root, count), nil
}

// sort a scratch copy, collapse duplicates, then bulk build
func (d *Dict) bulkBuild(pairs []avl.Pair, replace bool) (*Dict, error) {
	scratch := make([]avl.Pair, len(pairs))
	copy(scratch, pairs)

	// stable: equal keys keep their input order so the last one wins
	sort.SliceStable(scratch, func(i, j int) bool {
		return d.compare(scratch[i].Key, scratch[j].Key) < 0
	})

	n := 0
	for i := 0; i < len(scratch); i += 1 {
		if n > 0 && 0 == d.compare(scratch[n-1].Key, scratch[i].Key) {
			if !replace {
				return d, fault.ErrKeyAlreadyExists
			}
			scratch[n-1] = scratch[i]
		} else {
			scratch[n] = scratch[i]
			n += 1
		}
	}

	root := avl.BuildSorted(scratch[:n])
	root.Freeze()
	return d.derive(root, n), nil
}

// RemoveRange - remove a batch of keys, absent keys are ignored
func (d *Dict) RemoveRange(keys []avl.Item) (*Dict, error) {
	for _, key := range keys {
		if nil == key {
			return d, fault.ErrKeyIsNil
		}
	}

	root := d.root
	count := d.count
	for _, key := range keys {
		var removed bool
		root, removed = root.Remove(key, d.compare)
		if removed {
			count -= 1
		}
	}
	if count == d.count {
		return d, nil
	}
	root.Freeze()
	return d.derive(root, count), nil
}

// WithComparers - derive a dictionary with different comparers
//
// changing only the value equality reuses the existing tree since
// the ordering is unaffected; changing the key comparer rebuilds the
// whole tree by reinsertion and fails with ErrKeyAlreadyExists when
// the new ordering makes two stored keys collide
func (d *Dict) WithComparers(compare avl.KeyComparer, equal avl.ValueEqualer) (*Dict, error) {
	if nil == compare {
		compare = avl.NaturalKeyComparer
	}
	if nil == equal {
		equal = avl.NaturalValueEqualer
	}

	if sameFunc(compare, d.compare) {
		if sameFunc(equal, d.equal) {
			return d, nil
		}
		return &Dict{
			root:    d.root,
			count:   d.count,
			compare: compare,
			equal:   equal,
		}, nil
	}

	root := avl.Empty
	count := 0
	var err error
	d.Range(func(key avl.Item, value interface{}) bool {
		root, _, _, err = root.Insert(key, value, false, compare, equal)
		if nil != err {
			return false
		}
		count += 1
		return true
	})
	if nil != err {
		return d, err
	}
	root.Freeze()
	return &Dict{
		root:    root,
		count:   count,
		compare: compare,
		equal:   equal,
	}, nil
}
