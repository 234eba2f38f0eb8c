// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict

import (
	"sync"

	"github.com/bitmark-inc/immutable/avl"
	"github.com/bitmark-inc/immutable/counter"
)

// sizing of the process-wide stack pool
const (
	initialStackSize = 16 // enough for a tree of several thousand pairs
	maxFreeStacks    = 32
)

// one reusable traversal buffer
//
// owner is the token of the enumerator the buffer is currently
// loaned to, zero while the buffer sits in the pool; every operation
// must present the matching token, a mismatch means the buffer was
// reclaimed behind the holder's back
type pooledStack struct {
	nodes []*avl.Node
	owner uint64
}

// global data for the pool
var (
	poolLock   sync.Mutex
	freeStacks []*pooledStack

	tokens counter.Counter // token source, zero is reserved for "unowned"

	checkOuts   counter.Counter
	checkIns    counter.Counter
	allocations counter.Counter
	discards    counter.Counter
)

// fetch a buffer from the pool under a fresh ownership token
func checkOut() *pooledStack {
	token := tokens.Increment()

	poolLock.Lock()
	var s *pooledStack
	if n := len(freeStacks); n > 0 {
		s = freeStacks[n-1]
		freeStacks[n-1] = nil
		freeStacks = freeStacks[:n-1]
	}
	poolLock.Unlock()

	if nil == s {
		allocations.Increment()
		s = &pooledStack{
			nodes: make([]*avl.Node, 0, initialStackSize),
		}
	}
	s.owner = token
	checkOuts.Increment()
	return s
}

// detach a buffer from its owner and return it to the pool
func checkIn(s *pooledStack) {
	s.clear()
	s.owner = 0
	checkIns.Increment()

	poolLock.Lock()
	if len(freeStacks) < maxFreeStacks {
		freeStacks = append(freeStacks, s)
		poolLock.Unlock()
		return
	}
	poolLock.Unlock()
	discards.Increment()
}

func (s *pooledStack) push(p *avl.Node) {
	s.nodes = append(s.nodes, p)
}

func (s *pooledStack) pop() *avl.Node {
	n := len(s.nodes) - 1
	p := s.nodes[n]
	s.nodes[n] = nil // do not keep nodes alive through the buffer
	s.nodes = s.nodes[:n]
	return p
}

func (s *pooledStack) clear() {
	for i := range s.nodes {
		s.nodes[i] = nil
	}
	s.nodes = s.nodes[:0]
}

// Statistics - counters describing pool behaviour
type Statistics struct {
	CheckOuts   uint64 // buffers handed to enumerators
	CheckIns    uint64 // buffers returned by Dispose
	Allocations uint64 // buffers created because the pool was empty
	Discards    uint64 // buffers dropped because the pool was full
	Free        int    // buffers currently pooled
}

// PoolStatistics - snapshot of the enumerator stack pool counters
func PoolStatistics() Statistics {
	poolLock.Lock()
	free := len(freeStacks)
	poolLock.Unlock()

	return Statistics{
		CheckOuts:   checkOuts.Uint64(),
		CheckIns:    checkIns.Uint64(),
		Allocations: allocations.Uint64(),
		Discards:    discards.Uint64(),
		Free:        free,
	}
}
