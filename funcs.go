// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearhash

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// String converts s to a string representation. Keys are formatted
// with fmt's %v verb and sorted.
func (s *Set[K]) String() string {
	return StringFunc(s, func(key K) string { return fmt.Sprint(key) })
}

// StringFunc converts s to a string representation with the help of
// strK to stringify s's keys. Keys are sorted by their string form.
func StringFunc[K any](s *Set[K], strK func(key K) string) string {
	if s == nil || s.Len() == 0 {
		return "linearhash.Set[]"
	}
	strs := make([]string, 0, s.Len())
	n := 0
	for it := s.Iter(); it.Next(); {
		k := strK(it.Key())
		n += len(k)
		strs = append(strs, k)
	}
	slices.Sort(strs)

	var b strings.Builder
	b.Grow(len("linearhash.Set[]") + // space for header and footer
		len(strs) - 1 + // space for delimiters
		n) // space for keys
	b.WriteString("linearhash.Set[")
	for i, k := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if s1 and s2 hold the same keys. Keys of s1 are
// looked up in s2 using s2's equal and hash functions, so the order in
// which either set was built does not matter.
func Equal[K any](s1, s2 *Set[K]) bool {
	if s1.Len() != s2.Len() {
		return false
	}
	for it := s1.Iter(); it.Next(); {
		if !s2.Contains(it.Key()) {
			return false
		}
	}
	return true
}

// Subset returns true if every key of s1 is in s2.
func Subset[K any](s1, s2 *Set[K]) bool {
	if s1.Len() > s2.Len() {
		return false
	}
	for it := s1.Iter(); it.Next(); {
		if !s2.Contains(it.Key()) {
			return false
		}
	}
	return true
}
