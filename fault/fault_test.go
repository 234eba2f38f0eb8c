// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/immutable/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrMutationOne = fault.MutationError("mutation one")
	ErrMutationTwo = fault.MutationError("mutation two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		mutation bool
		notFound bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrMutationOne, false, false, true, false},
		{ErrMutationTwo, false, false, true, false},
		{ErrNotFoundOne, false, false, false, true},
		{ErrNotFoundTwo, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrMutation(err) != e.mutation {
			t.Errorf("%d: expected 'mutation' == %v for err = %v", i, e.mutation, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
	}
}

// test that distinct instances with the same class are distinct errors
func TestIdentity(t *testing.T) {
	if fault.ErrKeyAlreadyExists == fault.ExistsError(fault.ErrKeyNotFound.Error()) {
		t.Errorf("unexpected equality between different error instances")
	}
	if fault.ErrKeyAlreadyExists.Error() != "key already exists" {
		t.Errorf("unexpected message: %q", fault.ErrKeyAlreadyExists.Error())
	}
}
