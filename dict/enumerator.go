// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict

import (
	"github.com/bitmark-inc/immutable/avl"
	"github.com/bitmark-inc/immutable/fault"
)

// Enumerator - ascending in-order traversal without recursion
//
// the stack holds the pending nodes: the top is always the next
// node to yield; an enumerator over an empty tree never touches the
// pool at all
//
// Dispose returns the buffer to the pool; after that, and whenever
// the presented ownership token no longer matches the buffer, every
// operation fails instead of silently reading another enumerator's
// state
type Enumerator struct {
	root     *avl.Node
	builder  *Builder // nil unless created from a builder
	version  int      // builder version at creation
	token    uint64   // ownership token, zero when detached
	stack    *pooledStack
	current  *avl.Node
	disposed bool
}

func newEnumerator(root *avl.Node, builder *Builder) *Enumerator {
	e := &Enumerator{
		root:    root,
		builder: builder,
	}
	if nil != builder {
		e.version = builder.version
	}
	if !root.IsEmpty() {
		e.stack = checkOut()
		e.token = e.stack.owner
		e.pushLeftSpine(root)
	}
	return e
}

// validate the ownership token before touching the buffer
func (e *Enumerator) use() (*pooledStack, error) {
	s := e.stack
	if nil == s || 0 == e.token || s.owner != e.token {
		return nil, fault.ErrStackNotOwned
	}
	return s, nil
}

// push a node and all of its left descendants
func (e *Enumerator) pushLeftSpine(p *avl.Node) {
	for !p.IsEmpty() {
		e.stack.push(p)
		p = p.Left()
	}
}

// MoveNext - advance to the next pair
//
// returns false once the traversal is exhausted; fails when the
// enumerator is disposed or a backing builder was edited since the
// enumerator was created
func (e *Enumerator) MoveNext() (bool, error) {
	if e.disposed {
		return false, fault.ErrEnumeratorIsDisposed
	}
	if nil != e.builder && e.builder.version != e.version {
		return false, fault.ErrCollectionWasModified
	}
	if nil == e.stack { // empty tree
		e.current = nil
		return false, nil
	}
	s, err := e.use()
	if nil != err {
		return false, err
	}
	if 0 == len(s.nodes) {
		e.current = nil
		return false, nil
	}
	e.current = s.pop()
	e.pushLeftSpine(e.current.Right())
	return true, nil
}

// Current - the pair MoveNext stopped on
//
// fails before the first MoveNext, after the traversal is exhausted
// and after Dispose
func (e *Enumerator) Current() (avl.Item, interface{}, error) {
	if e.disposed {
		return nil, nil, fault.ErrEnumeratorIsDisposed
	}
	if nil == e.current {
		return nil, nil, fault.ErrNoCurrentItem
	}
	return e.current.Key(), e.current.Value(), nil
}

// Reset - restart the traversal from the lowest key
func (e *Enumerator) Reset() error {
	if e.disposed {
		return fault.ErrEnumeratorIsDisposed
	}
	if nil != e.builder && e.builder.version != e.version {
		return fault.ErrCollectionWasModified
	}
	e.current = nil
	if nil == e.stack { // empty tree
		return nil
	}
	s, err := e.use()
	if nil != err {
		return err
	}
	s.clear()
	e.pushLeftSpine(e.root)
	return nil
}

// Dispose - return the stack buffer to the pool
//
// double dispose and disposing an empty-tree enumerator are no-ops
func (e *Enumerator) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.current = nil
	if nil == e.stack {
		return
	}
	if e.stack.owner == e.token {
		checkIn(e.stack)
	}
	e.stack = nil
	e.token = 0
}
