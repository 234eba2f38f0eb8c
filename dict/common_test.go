// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dict_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/immutable/avl"
	"github.com/bitmark-inc/immutable/dict"
)

type stringKey string

func (k stringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(stringKey)))
}

type intKey int

func (k intKey) Compare(x interface{}) int {
	return int(k) - int(x.(intKey))
}

// build a dictionary from alternating key/value strings
func makeDict(t *testing.T, items ...string) *dict.Dict {
	if 0 != len(items)%2 {
		t.Fatal("makeDict needs key/value pairs")
	}
	d := dict.New()
	for i := 0; i < len(items); i += 2 {
		var err error
		d, _, err = d.SetItem(stringKey(items[i]), items[i+1])
		if nil != err {
			t.Fatalf("set item: %q  error: %s", items[i], err)
		}
	}
	return d
}

// drain an enumerator collecting all pairs, then dispose it
func collect(t *testing.T, e *dict.Enumerator) []avl.Pair {
	defer e.Dispose()

	pairs := []avl.Pair{}
	for {
		ok, err := e.MoveNext()
		if nil != err {
			t.Fatalf("move next error: %s", err)
		}
		if !ok {
			break
		}
		key, value, err := e.Current()
		if nil != err {
			t.Fatalf("current error: %s", err)
		}
		pairs = append(pairs, avl.Pair{Key: key, Value: value})
	}
	return pairs
}

// assert full ordered contents against alternating key/value strings
func checkContents(t *testing.T, d *dict.Dict, items ...string) {
	if 0 != len(items)%2 {
		t.Fatal("checkContents needs key/value pairs")
	}
	if len(items)/2 != d.Count() {
		t.Fatalf("count: actual: %d  expected: %d", d.Count(), len(items)/2)
	}
	pairs := collect(t, d.Enumerate())
	for i := 0; i < len(items); i += 2 {
		pair := pairs[i/2]
		if string(pair.Key.(stringKey)) != items[i] {
			t.Fatalf("[%d] key: actual: %q  expected: %q", i/2, pair.Key, items[i])
		}
		if pair.Value != items[i+1] {
			t.Fatalf("[%d] value: actual: %q  expected: %q", i/2, pair.Value, items[i+1])
		}
	}
}
