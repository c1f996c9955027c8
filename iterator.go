// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearhash

// Iterator is instantiated by a call to Iter, Find or Insert. It walks
// a Set in directory order: row by row, each row's buckets in chain
// order, each bucket slot by slot. Vacant slots are skipped.
//
// Inserting into or deleting from the Set invalidates its iterators.
type Iterator[K any] struct {
	key  K
	s    *Set[K]
	pos  position
	done bool
}

// Iter instantiates an Iterator positioned before the first key of s.
func (s *Set[K]) Iter() *Iterator[K] {
	if s == nil || s.count == 0 {
		return &Iterator[K]{s: s, done: true}
	}
	return &Iterator[K]{s: s, pos: position{slot: -1}}
}

func (s *Set[K]) iterAt(p position) *Iterator[K] {
	return &Iterator[K]{key: s.slotAt(p).key, s: s, pos: p}
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true, or on an
// Iterator returned by Find or Insert that is not done.
func (it *Iterator[K]) Key() K {
	return it.key
}

// Done reports whether it has moved past the last key.
func (it *Iterator[K]) Done() bool {
	return it.done
}

// Next moves the iterator to the next key. Next returns false when the
// iterator is complete.
func (it *Iterator[K]) Next() bool {
	if it.done {
		return false
	}
	s := it.s
	p := &it.pos
	for {
		if p.row >= s.rows() || p.bucket >= len(s.dir[p.row]) {
			// The set shrank underneath us.
			return it.finish()
		}
		b := s.dir[p.row][p.bucket]
		p.slot++
		if p.slot < len(b.slots) {
			if b.slots[p.slot].used {
				it.key = b.slots[p.slot].key
				return true
			}
			continue
		}
		switch {
		case p.bucket+1 < len(s.dir[p.row]):
			p.bucket++
		case !s.dir[p.row][0].last:
			p.row++
			p.bucket = 0
		default:
			return it.finish()
		}
		p.slot = -1
	}
}

func (it *Iterator[K]) finish() bool {
	var zeroK K
	it.key = zeroK
	it.pos = position{}
	it.done = true
	return false
}

// Equal reports whether it and other are positioned at the same slot
// of the same Set. All done iterators are equal.
func (it *Iterator[K]) Equal(other *Iterator[K]) bool {
	if it.done || other.done {
		return it.done == other.done
	}
	return it.s == other.s && it.pos == other.pos
}
