// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearhash

import (
	"bytes"
	"fmt"
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashers(t *testing.T) {
	seed1, seed2 := maphash.MakeSeed(), maphash.MakeSeed()

	t.Run("IntHash", func(t *testing.T) {
		assert.Equal(t, uint64(42), IntHash(seed1, 42))
		assert.Equal(t, uint64(7), IntHash(seed1, uint8(7)))
		assert.Equal(t, IntHash(seed1, int64(-1)), IntHash(seed2, int64(-1)))
	})

	t.Run("StringHash", func(t *testing.T) {
		assert.Equal(t, xxhash.Sum64String("linear"), StringHash(seed1, "linear"))
		assert.Equal(t, StringHash(seed1, "linear"), StringHash(seed2, "linear"))
	})

	t.Run("BytesHash", func(t *testing.T) {
		b := []byte("hashing")
		assert.Equal(t, xxhash.Sum64(b), BytesHash(seed1, b))
		assert.Equal(t, StringHash(seed1, "hashing"), BytesHash(seed2, b))
	})

	t.Run("SipHash", func(t *testing.T) {
		h := SipHash(1, 2)
		b := []byte("hashing")
		assert.Equal(t, siphash.Hash(1, 2, b), h(seed1, b))
		assert.Equal(t, h(seed1, b), h(seed2, b))
		assert.NotEqual(t, h(seed1, b), SipHash(2, 1)(seed1, b))
	})
}

func TestSetWithHashers(t *testing.T) {
	ks := make([][]byte, 0, 300)
	for i := 0; i < 300; i++ {
		ks = append(ks, []byte(fmt.Sprintf("key-%03d", i)))
	}
	for name, h := range map[string]func(maphash.Seed, []byte) uint64{
		"xxhash":  BytesHash,
		"siphash": SipHash(0x0706050403020100, 0x0f0e0d0c0b0a0908),
		"maphash": maphash.Bytes,
	} {
		t.Run(name, func(t *testing.T) {
			s := NewSize(4, bytes.Equal, h, ks...)
			require.NoError(t, s.verify(), s.debugString())
			assert.Equal(t, len(ks), s.Len())
			for _, k := range ks {
				assert.True(t, s.Contains(k), "lost %s", k)
			}
			assert.False(t, s.Contains([]byte("key-300")))
		})
	}
}
