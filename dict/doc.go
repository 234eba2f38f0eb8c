// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dict - a persistent sorted key-value map
//
// A Dict is immutable: every mutating operation returns a new Dict
// and the old one keeps its contents unchanged, so any number of go
// routines can read any number of versions concurrently without any
// locking.  Versions share their unchanged sub-trees.
//
// A Builder is the mutable counterpart for batching many edits
// without allocating one Dict per edit; it is owned by a single go
// routine and is converted back with ToImmutable.
//
// Enumeration is in ascending key order using an explicit stack of
// pending nodes; the stacks are pooled process-wide and guarded by
// ownership tokens so a stale enumerator can never read another
// enumerator's buffer.
package dict
