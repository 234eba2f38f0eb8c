// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/immutable/dict"
	"github.com/bitmark-inc/immutable/fault"
)

func TestBuilderBasics(t *testing.T) {
	b := dict.New().ToBuilder()

	assert.NoError(t, b.Add(stringKey("b"), "2"), "add b")
	assert.NoError(t, b.Add(stringKey("a"), "1"), "add a")
	assert.Equal(t, fault.ErrKeyAlreadyExists, b.Add(stringKey("a"), "x"), "duplicate add")

	replaced, err := b.SetItem(stringKey("a"), "changed")
	assert.NoError(t, err, "set item")
	assert.True(t, replaced, "must report replacement")

	removed, err := b.Remove(stringKey("b"))
	assert.NoError(t, err, "remove")
	assert.True(t, removed, "must report removal")
	removed, err = b.Remove(stringKey("zz"))
	assert.NoError(t, err, "absent remove")
	assert.False(t, removed, "absent keys are ignored")

	assert.Equal(t, 1, b.Count(), "builder count")
	value, err := b.Get(stringKey("a"))
	assert.NoError(t, err, "builder get")
	assert.Equal(t, "changed", value, "builder get value")
	assert.True(t, b.ContainsKey(stringKey("a")), "builder contains")

	d := b.ToImmutable()
	checkContents(t, d, "a", "changed")
}

// edits through a builder must equal the same edits applied one
// wrapper at a time
func TestBuilderEquivalence(t *testing.T) {

	direct := dict.New()
	b := dict.New().ToBuilder()

	var err error
	for i := 0; i < 500; i += 1 {
		key := stringKey(fmt.Sprintf("%03d", (i*377)%500))
		value := fmt.Sprintf("data:%d", i)

		direct, _, err = direct.SetItem(key, value)
		assert.NoError(t, err, "direct set item")
		_, err = b.SetItem(key, value)
		assert.NoError(t, err, "builder set item")
	}
	for i := 0; i < 500; i += 5 {
		key := stringKey(fmt.Sprintf("%03d", i))

		direct, err = direct.Remove(key)
		assert.NoError(t, err, "direct remove")
		_, err = b.Remove(key)
		assert.NoError(t, err, "builder remove")
	}

	staged := b.ToImmutable()
	assert.Equal(t, direct.Count(), staged.Count(), "count mismatch")
	assert.True(t, direct.Equal(staged), "contents mismatch")
}

// a dictionary handed out by ToImmutable must not observe later
// builder edits
func TestBuilderIsolation(t *testing.T) {
	b := dict.New().ToBuilder()
	assert.NoError(t, b.Add(stringKey("a"), "1"), "add a")
	assert.NoError(t, b.Add(stringKey("b"), "2"), "add b")

	snapshot := b.ToImmutable()

	_, err := b.SetItem(stringKey("a"), "changed")
	assert.NoError(t, err, "set after snapshot")
	assert.NoError(t, b.Add(stringKey("c"), "3"), "add after snapshot")
	_, err = b.Remove(stringKey("b"))
	assert.NoError(t, err, "remove after snapshot")

	checkContents(t, snapshot, "a", "1", "b", "2")
	checkContents(t, b.ToImmutable(), "a", "changed", "c", "3")
}

func TestBuilderFromExisting(t *testing.T) {
	d := makeDict(t, "a", "1", "b", "2", "c", "3")

	b := d.ToBuilder()
	_, err := b.Remove(stringKey("b"))
	assert.NoError(t, err, "remove")
	assert.NoError(t, b.Add(stringKey("d"), "4"), "add")

	checkContents(t, b.ToImmutable(), "a", "1", "c", "3", "d", "4")
	checkContents(t, d, "a", "1", "b", "2", "c", "3")
}

func TestBuilderClear(t *testing.T) {
	b := makeDict(t, "a", "1", "b", "2").ToBuilder()
	b.Clear()
	assert.Equal(t, 0, b.Count(), "cleared count")
	assert.True(t, dict.Empty == b.ToImmutable(), "cleared builder must yield the canonical empty")
}

// mutating the builder mid-enumeration must fail fast
func TestBuilderModificationDetected(t *testing.T) {
	b := makeDict(t, "a", "1", "b", "2", "c", "3").ToBuilder()

	e := b.Enumerate()
	defer e.Dispose()

	ok, err := e.MoveNext()
	assert.NoError(t, err, "first move next")
	assert.True(t, ok, "first move next result")

	_, err = b.SetItem(stringKey("b"), "changed")
	assert.NoError(t, err, "edit during enumeration")

	_, err = e.MoveNext()
	assert.Equal(t, fault.ErrCollectionWasModified, err, "move next must fail")
	assert.Equal(t, fault.ErrCollectionWasModified, e.Reset(), "reset must fail")

	// a fresh enumerator sees the new state
	checkContents(t, b.ToImmutable(), "a", "1", "b", "changed", "c", "3")
}

// an equal-value SetItem is not a structural edit and must not
// invalidate a live enumerator
func TestBuilderEqualValueKeepsEnumerator(t *testing.T) {
	b := makeDict(t, "a", "1", "b", "2").ToBuilder()

	e := b.Enumerate()
	defer e.Dispose()

	_, err := e.MoveNext()
	assert.NoError(t, err, "move next")

	replaced, err := b.SetItem(stringKey("a"), "1")
	assert.NoError(t, err, "equal value set item")
	assert.False(t, replaced, "nothing was replaced")

	ok, err := e.MoveNext()
	assert.NoError(t, err, "move next after no-op edit")
	assert.True(t, ok, "enumeration continues")
}
