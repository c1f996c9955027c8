// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linearhash provides the Set type, a hash set that grows with
// the linear hashing algorithm. Users provide an equal and a hash
// function.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values.
//   - If a key in a `Set` contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that effects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//   - A Set is not safe for concurrent use. Callers that share a Set
//     between goroutines must serialize every call themselves.
package linearhash

// A set is a directory of rows. Each row owns a chain of buckets: a
// primary bucket followed by overflow buckets in the order they were
// allocated. Each bucket holds up to bucketSize keys.
//
// The directory has 1<<d + nextToSplit rows. A key with hash h lives in
// row h mod 1<<d, unless that row is below nextToSplit, in which case
// the row has already been split in this generation and the key lives
// in row h mod 1<<(d+1).
//
// Before an insert that would have to allocate an overflow bucket, the
// set grows by exactly one row: the new row is appended at the end of
// the directory and the keys of row nextToSplit (before the increment)
// are redistributed between that row and the new one. When
// nextToSplit reaches 1<<d it wraps to zero and d is incremented. Each
// split touches a single row, so growth cost is spread over inserts
// instead of paid all at once.
//
// Deleting a key marks its slot vacant. Buckets are never compacted or
// freed on delete; the next insert into the row may reuse the slot.
//
// Buckets record the index of the row that owns them instead of a
// reference into the directory, so the directory can be reallocated
// without fixing up its buckets.
//
// Iterators walk the directory in row order, then chain order, then
// slot order. A split moves keys between rows, so the order of a full
// iteration is not stable across inserts.

import (
	"hash/maphash"
)

const (
	// Number of keys a bucket holds when no size is given to NewSize.
	defaultBucketSize = 3

	// flags
	hashWriting = 4 // a goroutine is writing to the set
)

type slot[K any] struct {
	key  K
	used bool
}

type bucket[K any] struct {
	slots []slot[K]
	count int // # used slots
	row   int // index of the owning row in the directory
	// last is set on the primary bucket of the final row only. It
	// terminates iteration.
	last bool
}

func (b *bucket[K]) full() bool {
	return b.count == len(b.slots)
}

// chain is the ordered list of buckets owned by one row. chain[0] is the
// primary bucket and new overflow buckets are appended at the tail.
type chain[K any] []*bucket[K]

func (c chain[K]) tail() *bucket[K] {
	return c[len(c)-1]
}

// position addresses a slot: row, bucket index within the row's chain,
// and slot index within the bucket.
type position struct {
	row    int
	bucket int
	slot   int
}

// Set implements a hash set using linear hashing.
type Set[K any] struct {
	count int // # live keys == size of set
	flags uint32

	d           int // number of hash bits used by rows not yet split
	nextToSplit int // index of the next row to split

	// dir holds the rows. len(dir) is the row capacity; only
	// dir[:rows()] are populated.
	dir        []chain[K]
	bucketSize int

	seed  maphash.Seed
	hash  func(maphash.Seed, K) uint64
	equal func(K, K) bool
}

// Stats describes the shape of a Set.
type Stats struct {
	TableSize   int // rows * bucket size
	Len         int // number of keys
	RowCapacity int // rows the directory can hold before reallocating
	Rows        int
	D           int
	NextToSplit int
	BucketSize  int
	Overflow    int // number of overflow buckets
}

// New instantiates a new Set holding any keys passed. Buckets hold
// three keys. The equal func must return true for two values of K that
// are equal and false otherwise. The hash func should return a
// uniformly distributed hash value. If equal(a, b) then hash(a) ==
// hash(b). The hash function is passed a [hash/maphash.Seed], this is
// meant to be used with functions and types in the [hash/maphash]
// package, though can be ignored.
func New[K any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	keys ...K) *Set[K] {

	return NewSize(defaultBucketSize, equal, hash, keys...)
}

// NewSize instantiates a new Set whose buckets hold bucketSize keys.
// See [New] for discussion of the equal and hash arguments. NewSize
// panics if bucketSize is less than 1.
func NewSize[K any](
	bucketSize int,
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	keys ...K) *Set[K] {

	if bucketSize < 1 {
		panic("linearhash: bucket size must be positive")
	}
	s := &Set[K]{
		bucketSize: bucketSize,
		seed:       maphash.MakeSeed(),
		hash:       hash,
		equal:      equal,
	}
	s.init()
	s.InsertAll(keys...)
	return s
}

// init resets s to a single empty row.
func (s *Set[K]) init() {
	s.count = 0
	s.d = 0
	s.nextToSplit = 0
	s.dir = make([]chain[K], 1)
	b := s.newBucket(0)
	b.last = true
	s.dir[0] = chain[K]{b}
}

func (s *Set[K]) newBucket(row int) *bucket[K] {
	return &bucket[K]{slots: make([]slot[K], s.bucketSize), row: row}
}

func (s *Set[K]) rows() int {
	return 1<<s.d + s.nextToSplit
}

// rowFor returns the row that holds keys with the given hash.
func (s *Set[K]) rowFor(hash uint64) int {
	r := hash & (uint64(1)<<s.d - 1)
	if r < uint64(s.nextToSplit) {
		r = hash & (uint64(1)<<(s.d+1) - 1)
	}
	return int(r)
}

// needsSplit reports whether adding a key with the given hash would
// allocate an overflow bucket.
func (s *Set[K]) needsSplit(hash uint64) bool {
	return s.dir[s.rowFor(hash)].tail().full()
}

// allocate replaces the directory with one that can hold n rows.
func (s *Set[K]) allocate(n int) {
	if n < s.rows() {
		panic("linearhash: invalid capacity request")
	}
	dir := make([]chain[K], n)
	copy(dir, s.dir[:s.rows()])
	s.dir = dir
}

// appendRow adds an empty row at the end of the directory and advances
// nextToSplit, rolling it over into d.
func (s *Set[K]) appendRow() {
	if s.rows() >= len(s.dir) {
		s.allocate(2*s.rows() + 1)
	}
	s.dir[s.rows()-1][0].last = false
	s.nextToSplit++
	if s.nextToSplit >= 1<<s.d {
		s.d++
		s.nextToSplit = 0
	}
	r := s.rows() - 1
	b := s.newBucket(r)
	b.last = true
	s.dir[r] = chain[K]{b}
}

func (s *Set[K]) split() {
	s.appendRow()
	s.rehash()
}

// rehash redistributes the keys of the row that was just split between
// that row and the row appended by appendRow.
func (s *Set[K]) rehash() {
	var old int
	if s.nextToSplit == 0 {
		old = 1<<(s.d-1) - 1
	} else {
		old = s.nextToSplit - 1
	}
	detached := s.dir[old]
	s.dir[old] = chain[K]{s.newBucket(old)}
	for _, b := range detached {
		if b.count == 0 {
			continue
		}
		for i := range b.slots {
			if b.slots[i].used {
				key := b.slots[i].key
				s.add(s.hash(s.seed, key), key)
			}
		}
	}
}

// add stores key in the first vacant slot of the tail bucket of its
// row, chaining a new overflow bucket if the tail is full. It does not
// check for duplicates or update s.count.
func (s *Set[K]) add(hash uint64, key K) position {
	r := s.rowFor(hash)
	c := s.dir[r]
	b := c.tail()
	if b.full() {
		b = s.newBucket(r)
		c = append(c, b)
		s.dir[r] = c
	}
	for i := range b.slots {
		if !b.slots[i].used {
			b.slots[i] = slot[K]{key: key, used: true}
			b.count++
			return position{row: r, bucket: len(c) - 1, slot: i}
		}
	}
	panic("linearhash: bad set state")
}

// locate returns the position of key, which has the given hash.
func (s *Set[K]) locate(hash uint64, key K) (position, bool) {
	r := s.rowFor(hash)
	for bi, b := range s.dir[r] {
		if b.count == 0 {
			continue
		}
		for i := range b.slots {
			if b.slots[i].used && s.equal(key, b.slots[i].key) {
				return position{row: r, bucket: bi, slot: i}, true
			}
		}
	}
	return position{}, false
}

func (s *Set[K]) slotAt(p position) *slot[K] {
	return &s.dir[p.row][p.bucket].slots[p.slot]
}

// Len returns the count of keys in s.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Empty reports whether s holds no keys.
func (s *Set[K]) Empty() bool {
	return s.Len() == 0
}

// Contains reports whether key is in s.
func (s *Set[K]) Contains(key K) bool {
	if s == nil || s.count == 0 {
		return false
	}
	_, ok := s.locate(s.hash(s.seed, key), key)
	return ok
}

// Count returns 1 if key is in s and 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Find returns an Iterator positioned at key. If key is not in s the
// returned Iterator is done.
func (s *Set[K]) Find(key K) *Iterator[K] {
	if s == nil || s.count == 0 {
		return &Iterator[K]{s: s, done: true}
	}
	p, ok := s.locate(s.hash(s.seed, key), key)
	if !ok {
		return &Iterator[K]{s: s, done: true}
	}
	return s.iterAt(p)
}

// Insert adds key to s. It returns an Iterator positioned at the key
// and true if the key was added, or an Iterator positioned at the
// already present equal key and false.
func (s *Set[K]) Insert(key K) (*Iterator[K], bool) {
	if s == nil {
		// We have to panic here rather than initialize an empty set
		// because we need the user to pass in hash and equal
		// functions
		panic("Insert called on nil set")
	}
	if s.flags&hashWriting != 0 {
		panic("concurrent set writes")
	}
	hash := s.hash(s.seed, key)
	// Set hashWriting after calling s.hash, since s.hash may panic,
	// in which case we have not actually done a write.
	s.flags ^= hashWriting

	p, found := s.locate(hash, key)
	if !found {
		if s.needsSplit(hash) {
			// The split may move key's row, so add routes it again.
			s.split()
		}
		p = s.add(hash, key)
		s.count++
	}

	if s.flags&hashWriting == 0 {
		panic("concurrent set writes")
	}
	s.flags &^= hashWriting
	return s.iterAt(p), !found
}

// InsertAll adds every key in keys to s and returns how many of them
// were not already present. Duplicates are skipped.
func (s *Set[K]) InsertAll(keys ...K) int {
	added := 0
	for _, key := range keys {
		if _, ok := s.Insert(key); ok {
			added++
		}
	}
	return added
}

// Delete removes key from s and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	if s == nil || s.count == 0 {
		return false
	}
	if s.flags&hashWriting != 0 {
		panic("concurrent set writes")
	}
	hash := s.hash(s.seed, key)
	s.flags ^= hashWriting

	p, found := s.locate(hash, key)
	if found {
		b := s.dir[p.row][p.bucket]
		// Clear the key in case it has pointers
		b.slots[p.slot] = slot[K]{}
		b.count--
		s.count--
	}

	if s.flags&hashWriting == 0 {
		panic("concurrent set writes")
	}
	s.flags &^= hashWriting
	return found
}

// Clear deletes all keys from s and shrinks it back to a single row.
func (s *Set[K]) Clear() {
	if s == nil {
		return
	}
	if s.flags&hashWriting != 0 {
		panic("concurrent set writes")
	}
	s.flags ^= hashWriting

	s.init()
	s.seed = maphash.MakeSeed()

	if s.flags&hashWriting == 0 {
		panic("concurrent set writes")
	}
	s.flags &^= hashWriting
}

// Reset replaces the contents of s with keys.
func (s *Set[K]) Reset(keys ...K) {
	tmp := NewSize(s.bucketSize, s.equal, s.hash, keys...)
	s.Swap(tmp)
}

// Swap exchanges the contents of s and other.
func (s *Set[K]) Swap(other *Set[K]) {
	if s == other {
		return
	}
	*s, *other = *other, *s
}

// Clone returns a new Set with the same bucket size, equal and hash
// functions, holding every key of s. Keys are inserted one by one into
// the new Set, so its layout may differ from the layout of s.
func (s *Set[K]) Clone() *Set[K] {
	if s == nil {
		return nil
	}
	c := NewSize(s.bucketSize, s.equal, s.hash)
	for it := s.Iter(); it.Next(); {
		c.Insert(it.Key())
	}
	return c
}

// Stats returns the current shape of s.
func (s *Set[K]) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	st := Stats{
		TableSize:   s.rows() * s.bucketSize,
		Len:         s.count,
		RowCapacity: len(s.dir),
		Rows:        s.rows(),
		D:           s.d,
		NextToSplit: s.nextToSplit,
		BucketSize:  s.bucketSize,
	}
	for _, c := range s.dir[:s.rows()] {
		st.Overflow += len(c) - 1
	}
	return st
}
