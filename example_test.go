// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearhash_test

import (
	"fmt"
	"os"

	"github.com/aristanetworks/linearhash"
)

func ExampleSet_Iter() {
	s := linearhash.New(
		linearhash.Eq[string],
		linearhash.StringHash,
		"Avenue", "Street", "Court",
	)

	for i := s.Iter(); i.Next(); {
		fmt.Printf("%q is in the set\n", i.Key())
	}
}

func ExampleSet_Dump() {
	s := linearhash.New(linearhash.Eq[int], linearhash.IntHash[int], 1, 2, 3, 4)
	s.Dump(os.Stdout)

	for i := s.Iter(); i.Next(); {
		fmt.Println(i.Key())
	}
	// Output:
	// table_size = 6, size = 4, row_capacity = 3, rows = 2, d = 1, nextToSplit = 0
	// 0 |2|4|_|
	// 1 |1|3|_|
	// 2
	// 4
	// 1
	// 3
}
