// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as QR codes.

The result of Encode is a pure module grid; rendering, including the
four-module quiet zone the standard requires around the symbol, is
left to the consumer.
*/
package qr // import "github.com/gridcode/qr"

import (
	"errors"

	"github.com/gridcode/qr/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% redundant
	M              // 15% redundant
	Q              // 25% redundant
	H              // 30% redundant
)

var (
	// ErrEmptyText is returned by Encode for empty input.
	ErrEmptyText = errors.New("qr: empty text")
	// ErrTooLong is returned by Encode when the text does not fit
	// in version 40 at the requested level.
	ErrTooLong = errors.New("qr: text too long to encode as QR")
)

// A Code is a square module grid.
type Code struct {
	Module  [][]bool // Module[y][x], true is dark
	Size    int      // number of modules on a side
	Version int      // QR code version, 1 to 40
}

// Black reports whether the module at (x, y) is dark.  Renderers may
// index outside the grid freely: the quiet zone and anything beyond
// is light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Module[y][x]
}

// Encode encodes the UTF-8 bytes of text at the given error
// correction level, using the smallest version the text fits in.
func Encode(text string, level Level) (*Code, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	l := coding.Level(level)
	if l < coding.L || l > coding.H {
		return nil, coding.ErrLevel
	}
	data := []byte(text)
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		if !v.Fits(len(data), l) {
			continue
		}
		cc, err := coding.Encode(v, l, data)
		if err != nil {
			return nil, err
		}
		return &Code{cc.Module, cc.Size, int(cc.Version)}, nil
	}
	return nil, ErrTooLong
}
