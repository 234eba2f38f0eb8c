// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type MutationError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrCollectionIsReadOnly  = MutationError("collection is read-only")
	ErrCollectionWasModified = InvalidError("collection was modified during enumeration")
	ErrDestinationTooSmall   = InvalidError("destination is too small")
	ErrEnumeratorIsDisposed  = InvalidError("enumerator is already disposed")
	ErrKeyAlreadyExists      = ExistsError("key already exists")
	ErrKeyIsNil              = InvalidError("key is nil")
	ErrKeyNotFound           = NotFoundError("key is not found")
	ErrNoCurrentItem         = InvalidError("enumerator has no current item")
	ErrStackNotOwned         = InvalidError("pooled stack is owned by another enumerator")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e MutationError) Error() string { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrMutation(e error) bool { _, ok := e.(MutationError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
