// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// lhfill inserts random keys into a linearhash.Set, then walks the set
// and prints its keys and shape.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aristanetworks/linearhash"
	"golang.org/x/exp/rand"
)

func main() {
	n := flag.Int("n", 20, "number of random keys to insert")
	maxKey := flag.Uint64("max", 100, "keys are drawn from [0, max)")
	size := flag.Int("bucket", 3, "keys per bucket")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one from the clock")
	dump := flag.Bool("dump", false, "dump the directory after inserting")
	flag.Parse()

	if *size < 1 || *maxKey == 0 {
		log.Fatalf("invalid arguments: -bucket=%d -max=%d", *size, *maxKey)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewSource(*seed))

	s := linearhash.NewSize(*size, linearhash.Eq[uint64], linearhash.IntHash[uint64])
	dups := 0
	for i := 0; i < *n; i++ {
		if _, ok := s.Insert(r.Uint64n(*maxKey)); !ok {
			dups++
		}
	}

	for it := s.Iter(); it.Next(); {
		fmt.Print(it.Key(), " ")
	}
	fmt.Println()

	st := s.Stats()
	fmt.Printf("seed %d: %d keys (%d duplicates skipped), %d rows, %d overflow buckets, d = %d, nextToSplit = %d\n",
		*seed, st.Len, dups, st.Rows, st.Overflow, st.D, st.NextToSplit)
	if *dump {
		if err := s.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump set: %v", err)
		}
	}
}
