// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"log"

	"github.com/gridcode/qr"
)

func ExampleEncode() {
	c, err := qr.Encode("hello world", qr.M)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(c.Version, c.Size, c.Black(0, 0))
	// Output: 1 21 true
}

// A renderer scales each dark module to a dark rectangle and
// surrounds the grid with a four module light quiet zone.  Black is
// light outside the grid, so the renderer may index the quiet zone
// directly.  Light modules print as full blocks for dark terminals.
func ExampleCode_Black() {
	c, err := qr.Encode("hello world", qr.M)
	if err != nil {
		log.Fatal(err)
	}
	for y := -4; y < c.Size+4; y += 2 {
		for x := -4; x < c.Size+4; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			if c.Black(x, y+1) {
				n++
			}
			fmt.Print([4]string{"█", "▀", "▄", " "}[n&3])
		}
		fmt.Println()
	}
}
