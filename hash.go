// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearhash

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"golang.org/x/exp/constraints"
)

// Hash and equal functions usable with New and NewSize. Unlike the
// functions of hash/maphash, the hashers below ignore the per-set seed:
// equal keys hash identically across sets and runs.

// Eq reports whether a == b.
func Eq[T comparable](a, b T) bool {
	return a == b
}

// IntHash hashes an integer to itself. Rows are selected by the low
// bits of the hash, so this is only a good choice for keys whose low
// bits are already well distributed, or for tests that need control
// over which row a key lands in.
func IntHash[T constraints.Integer](_ maphash.Seed, k T) uint64 {
	return uint64(k)
}

// StringHash hashes s with xxHash64.
func StringHash(_ maphash.Seed, s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes b with xxHash64.
func BytesHash(_ maphash.Seed, b []byte) uint64 {
	return xxhash.Sum64(b)
}

// SipHash returns a hash function computing SipHash-2-4 of its key
// with the 128-bit key (k0, k1).
func SipHash(k0, k1 uint64) func(maphash.Seed, []byte) uint64 {
	return func(_ maphash.Seed, b []byte) uint64 {
		return siphash.Hash(k0, k1, b)
	}
}
