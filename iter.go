// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build go1.23

package linearhash

import "iter"

// All returns an iterator over the keys in s, in the same order as
// Iter.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := s.Iter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// InsertSeq adds every key produced by seq to s and returns how many of
// them were not already present.
func (s *Set[K]) InsertSeq(seq iter.Seq[K]) int {
	added := 0
	seq(func(key K) bool {
		if _, ok := s.Insert(key); ok {
			added++
		}
		return true
	})
	return added
}
