// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionSize(t *testing.T) {
	require.Equal(t, 21, Version(1).Size())
	require.Equal(t, 25, Version(2).Size())
	require.Equal(t, 45, Version(7).Size())
	require.Equal(t, 177, Version(40).Size())
}

func TestCountBits(t *testing.T) {
	for v := MinVersion; v <= 9; v++ {
		require.Equal(t, 8, v.CountBits())
	}
	for v := Version(10); v <= MaxVersion; v++ {
		require.Equal(t, 16, v.CountBits())
	}
}

func TestDataBytes(t *testing.T) {
	cases := []struct {
		v    Version
		l    Level
		want int
	}{
		{1, L, 19},
		{1, M, 16},
		{1, Q, 13},
		{1, H, 9},
		{5, Q, 62},
		{40, L, 2956},
		{40, H, 1276},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.v.dataBytes(tc.l), "%v-%v", tc.v, tc.l)
	}
}

func TestFits(t *testing.T) {
	// version 1-M holds 128 data bits; the byte mode header takes 12
	require.True(t, Version(1).Fits(14, M))
	require.False(t, Version(1).Fits(15, M))
	require.True(t, Version(2).Fits(15, M))
	// the header grows to 20 bits at version 10
	require.True(t, Version(9).Fits(230, L))
	require.False(t, Version(9).Fits(231, L))
}

func TestLevelIndicator(t *testing.T) {
	require.Equal(t, uint32(1), L.indicator())
	require.Equal(t, uint32(0), M.indicator())
	require.Equal(t, uint32(3), Q.indicator())
	require.Equal(t, uint32(2), H.indicator())
}

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(4, 4)
	b.Write(1, 8)
	b.Write('1', 8)
	require.Equal(t, 20, b.Bits())
	b.Write(0, 4)
	require.Equal(t, []byte{0x40, 0x13, 0x10}, b.Bytes())
}

func TestPadTo(t *testing.T) {
	// byte mode "1" at version 1-M: header, payload, terminator,
	// then alternating pad codewords
	var b Bits
	b.AddSegment(1, []byte("1"))
	b.PadTo(Version(1).DataBits(M))
	require.Equal(t, []byte{
		0x40, 0x13, 0x10, 0xec, 0x11, 0xec, 0x11, 0xec,
		0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec,
	}, b.Bytes())

	// the terminator alone fills the last codeword when the
	// payload leaves exactly four bits free
	b.Reset()
	b.AddSegment(2, []byte("12345678901234567890123456"))
	require.Equal(t, Version(2).DataBits(M)-4, b.Bits())
	b.PadTo(Version(2).DataBits(M))
	require.Equal(t, 28, len(b.Bytes()))
	require.Equal(t, byte(0x60), b.Bytes()[27]) // '6' low nibble, terminator zeros
}

func TestAddCheckBytes(t *testing.T) {
	var b Bits
	b.AddSegment(1, []byte("1"))
	b.PadTo(Version(1).DataBits(M))
	b.AddCheckBytes(1, M)
	require.Equal(t, []byte{
		0x0a, 0x75, 0x7b, 0x96, 0x13, 0xcf, 0xeb, 0xc1, 0x7a, 0xb1,
	}, b.Bytes()[16:])
}

func TestInterleave(t *testing.T) {
	// version 5-Q: 62 data codewords in four blocks of
	// 15, 15, 16 and 16
	v, l := Version(5), Q
	nd := v.dataBytes(l)
	require.Equal(t, 62, nd)
	b := NewBits(v, l)
	for i := 0; i < nd; i++ {
		b.Write(uint32(i), 8)
	}
	b.AddCheckBytes(v, l)
	out := b.Interleaved(v, l)
	require.Len(t, out, 134)

	// data read column-major across the blocks...
	require.Equal(t, byte(0), out[0])  // block 0, codeword 0
	require.Equal(t, byte(15), out[1]) // block 1, codeword 0
	require.Equal(t, byte(30), out[2]) // block 2, codeword 0
	require.Equal(t, byte(46), out[3]) // block 3, codeword 0
	require.Equal(t, byte(1), out[4])  // block 0, codeword 1
	// ...with the long blocks' last codewords at the end
	require.Equal(t, byte(45), out[60]) // block 2, codeword 15
	require.Equal(t, byte(61), out[61]) // block 3, codeword 15

	// a single block passes through unchanged
	b = NewBits(1, M)
	b.AddSegment(1, []byte("1"))
	b.PadTo(Version(1).DataBits(M))
	b.AddCheckBytes(1, M)
	require.Equal(t, b.Bytes(), b.Interleaved(1, M))
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(0, M, []byte("x"))
	require.ErrorIs(t, err, ErrVersion)
	_, err = Encode(41, M, []byte("x"))
	require.ErrorIs(t, err, ErrVersion)
	_, err = Encode(1, Level(4), []byte("x"))
	require.ErrorIs(t, err, ErrLevel)
	_, err = Encode(1, M, make([]byte, 15))
	require.Error(t, err)
}
