// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearhash

import (
	"bytes"
	"hash/maphash"
	"testing"
)

func TestString(t *testing.T) {
	s := New(bytes.Equal, maphash.Bytes,
		[]byte("abc"),
		[]byte("def"),
		[]byte("ghi"),
	)
	str := s.String()
	expected := "linearhash.Set[[100 101 102] [103 104 105] [97 98 99]]"
	if expected != str {
		t.Errorf("Got: %q Expected: %q", str, expected)
	}

	str = StringFunc(s, func(b []byte) string { return string(b) })
	expected = "linearhash.Set[abc def ghi]"
	if str != expected {
		t.Errorf("Got: %q Expected: %q", str, expected)
	}

	s.Clear()
	if str := s.String(); str != "linearhash.Set[]" {
		t.Errorf("Got: %q Expected: %q", str, "linearhash.Set[]")
	}
}

func TestEqualOrderIndependent(t *testing.T) {
	words := []string{"Avenue", "Street", "Court", "Road", "Lane", "Way", "Place"}
	a := New(Eq[string], StringHash, words...)
	b := NewSize[string](1, Eq[string], maphash.String)
	for i := len(words) - 1; i >= 0; i-- {
		b.Insert(words[i])
	}
	if !Equal(a, b) || !Equal(b, a) {
		t.Errorf("expected equal sets:\n%s\n%s", a.debugString(), b.debugString())
	}
	b.Delete("Way")
	b.Insert("Boulevard")
	if Equal(a, b) {
		t.Errorf("expected unequal sets:\n%s\n%s", a.debugString(), b.debugString())
	}
}
