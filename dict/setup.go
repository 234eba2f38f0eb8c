// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict

import (
	"reflect"

	"github.com/bitmark-inc/immutable/avl"
)

// Dict - immutable wrapper holding one version of the map
//
// the zero value is not usable, start from Empty or New
type Dict struct {
	root    *avl.Node
	count   int
	compare avl.KeyComparer
	equal   avl.ValueEqualer
}

// Empty - the canonical empty dictionary with natural ordering
var Empty = &Dict{
	root:    avl.Empty,
	count:   0,
	compare: avl.NaturalKeyComparer,
	equal:   avl.NaturalValueEqualer,
}

// New - an empty dictionary with natural ordering and equality
func New() *Dict {
	return Empty
}

// NewWithComparers - an empty dictionary with specific ordering
// and/or equality; nil selects the natural default
func NewWithComparers(compare avl.KeyComparer, equal avl.ValueEqualer) *Dict {
	if nil == compare {
		compare = avl.NaturalKeyComparer
	}
	if nil == equal {
		equal = avl.NaturalValueEqualer
	}
	return emptyWith(compare, equal)
}

// internal: empty dictionary preserving given comparers
func emptyWith(compare avl.KeyComparer, equal avl.ValueEqualer) *Dict {
	if sameFunc(compare, avl.NaturalKeyComparer) && sameFunc(equal, avl.NaturalValueEqualer) {
		return Empty
	}
	return &Dict{
		root:    avl.Empty,
		count:   0,
		compare: compare,
		equal:   equal,
	}
}

// internal: new wrapper sharing this dictionary's comparers
func (d *Dict) derive(root *avl.Node, count int) *Dict {
	return &Dict{
		root:    root,
		count:   count,
		compare: d.compare,
		equal:   d.equal,
	}
}

// Count - number of key/value pairs
func (d *Dict) Count() int {
	return d.count
}

// IsEmpty - true when the dictionary holds no pairs
func (d *Dict) IsEmpty() bool {
	return 0 == d.count
}

// function values cannot be compared directly in Go
func sameFunc(a interface{}, b interface{}) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
