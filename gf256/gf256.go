// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256).
package gf256

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // doubled so that exp[log[x]+log[y]] needs no reduction
}

// NewField returns the field corresponding to the irreducible
// polynomial poly and generator α.  The Reed-Solomon encoding in QR
// codes uses polynomial 0x11d with generator 2.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// reducible reports whether p has a nontrivial polynomial factor.
// A factor of a reducible p must fit in nbit(p)/2+1 bits.
func reducible(p int) bool {
	np := nbit(p)
	for q := 2; q < 1<<(np/2+1); q++ {
		r := p
		nq := nbit(q)
		for nr := nbit(r); nr >= nq; nr-- {
			if r&(1<<(nr-1)) != 0 {
				r ^= q << (nr - nq)
			}
		}
		if r == 0 {
			return true
		}
	}
	return false
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Exp returns the base-α exponential of e in the field.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// An RSEncoder implements systematic Reed-Solomon encoding over a
// given field with a given number of check bytes.
type RSEncoder struct {
	f    *Field
	c    int
	gen  []byte // generator polynomial, highest degree first, gen[0] = 1
	lgen []byte // log gen[1:], 255 for log 0
}

// genPoly returns the degree-c generator polynomial
// (x-α⁰)(x-α¹)···(x-α^(c-1)), highest degree first.
func (f *Field) genPoly(c int) []byte {
	p := make([]byte, c+1)
	p[0] = 1
	for i := 0; i < c; i++ {
		// p *= (x + α^i)
		a := f.Exp(i)
		for j := i + 1; j > 0; j-- {
			p[j] ^= f.Mul(a, p[j-1])
		}
	}
	return p
}

// NewRSEncoder returns a Reed-Solomon encoder over the given field
// producing c check bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	gen := f.genPoly(c)
	lgen := make([]byte, c)
	for i, v := range gen[1:] {
		lgen[i] = 255
		if v != 0 {
			lgen[i] = f.log[v]
		}
	}
	return &RSEncoder{f: f, c: c, gen: gen, lgen: lgen}
}

// ECC writes to check the error correction bytes for data: the
// remainder of data·x^c divided by the generator polynomial.
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	check = check[:rs.c]
	for i := range check {
		check[i] = 0
	}
	for _, b := range data {
		// Shift the remainder left one byte and fold in b's
		// contribution, f·gen, term by term.
		f := b ^ check[0]
		copy(check, check[1:])
		check[rs.c-1] = 0
		if f == 0 {
			continue
		}
		exp := rs.f.exp[rs.f.log[f]:]
		for i, lg := range rs.lgen {
			if lg != 255 {
				check[i] ^= exp[lg]
			}
		}
	}
}
