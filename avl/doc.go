// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a persistent AVL balanced tree
//
// Unlike a conventional AVL tree every update produces a new root and
// leaves the previous root untouched, so any number of earlier
// versions stay valid and can be read concurrently without locking.
// Unchanged sub-trees are shared by reference between versions.
//
// A node starts out unfrozen and may then be modified in place, but
// only while it is exclusively owned by a single builder.  Freeze
// marks a node and all of its descendants immutable; any later change
// clones the affected path and reuses the unchanged children.  The
// frozen flag is the only thing deciding between the two modes.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs, reworked here to
// use stored heights instead of balance factors since cloned paths
// cannot keep parent pointers or adjust balances in place.
package avl
