// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linearhash

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human readable picture of s to w. The first line holds
// the table size (rows times bucket size), the number of keys, the row
// capacity of the directory, the number of rows, d and nextToSplit.
// Each following line is one row: every slot of every bucket in the
// chain, "_" for vacant slots, with "<-|" between chained buckets.
//
// The format is meant for debugging and may change.
func (s *Set[K]) Dump(w io.Writer) error {
	var b strings.Builder
	st := s.Stats()
	fmt.Fprintf(&b, "table_size = %d, size = %d, row_capacity = %d, rows = %d, d = %d, nextToSplit = %d\n",
		st.TableSize, st.Len, st.RowCapacity, st.Rows, st.D, st.NextToSplit)
	if s != nil {
		for r, c := range s.dir[:s.rows()] {
			fmt.Fprintf(&b, "%d |", r)
			for i, bkt := range c {
				if i != 0 {
					b.WriteString("<-|")
				}
				for _, sl := range bkt.slots {
					if sl.used {
						fmt.Fprint(&b, sl.key)
					} else {
						b.WriteByte('_')
					}
					b.WriteByte('|')
				}
			}
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
