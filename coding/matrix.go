// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a square module grid.
type Code struct {
	Module  [][]bool // Module[y][x], true is dark
	Size    int      // number of modules on a side
	Version Version  // QR code version
}

// Black reports whether the module at (x, y) is dark.
// Modules outside the grid, including the quiet zone, are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Module[y][x]
}

// A matrix is a module grid under construction: mod holds the module
// colours, res marks the cells claimed by function patterns or
// reserved for format and version information.  The data placement
// skips reserved cells; masks flip only unreserved ones.
type matrix struct {
	v   Version
	siz int
	mod [][]bool
	res [][]bool
}

func newGrid(siz int) [][]bool {
	g := make([][]bool, siz)
	for i := range g {
		g[i] = make([]bool, siz)
	}
	return g
}

// newMatrix returns a matrix for version v with all function
// patterns stamped and all format and version cells reserved.
func newMatrix(v Version) *matrix {
	siz := v.Size()
	m := &matrix{v: v, siz: siz, mod: newGrid(siz), res: newGrid(siz)}
	m.finder(0, 0)
	m.finder(siz-7, 0)
	m.finder(0, siz-7)
	m.alignments()
	m.timing()
	m.reserveInfo()
	return m
}

// set stamps the module at (x, y) and reserves it.
func (m *matrix) set(x, y int, dark bool) {
	m.mod[y][x] = dark
	m.res[y][x] = true
}

// finder stamps the 7×7 finder pattern with its upper left module
// at (x0, y0) and reserves the 8×8 footprint including the
// one-module separator, clamped to the grid.
func (m *matrix) finder(x0, y0 int) {
	for dy := -1; dy < 8; dy++ {
		for dx := -1; dx < 8; dx++ {
			x, y := x0+dx, y0+dy
			if x < 0 || x >= m.siz || y < 0 || y >= m.siz {
				continue
			}
			dark := false
			if dx >= 0 && dx < 7 && dy >= 0 && dy < 7 {
				dark = dx == 0 || dx == 6 || dy == 0 || dy == 6 ||
					dx >= 2 && dx <= 4 && dy >= 2 && dy <= 4
			}
			m.set(x, y, dark)
		}
	}
}

// alignments stamps the version's alignment patterns, skipping
// centres whose 5×5 box would overlap a finder footprint.
func (m *matrix) alignments() {
	pos := vtab[m.v].align
	for _, cy := range pos {
		for _, cx := range pos {
			if cx <= 8 && cy <= 8 ||
				cx <= 8 && cy >= m.siz-8 ||
				cx >= m.siz-8 && cy <= 8 {
				continue
			}
			m.alignBox(cx, cy)
		}
	}
}

// alignBox stamps a 5×5 alignment pattern centred at (cx, cy):
// dark ring, light inner ring, dark centre.
func (m *matrix) alignBox(cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			// dark ring at Chebyshev distance 2, dark centre
			m.set(cx+dx, cy+dy, max(dx, -dx, dy, -dy) != 1)
		}
	}
}

// timing stamps the horizontal and vertical timing patterns in row 6
// and column 6, between the finder footprints.
func (m *matrix) timing() {
	for i := 8; i < m.siz-8; i++ {
		if !m.res[6][i] {
			m.set(i, 6, i%2 == 0)
		}
		if !m.res[i][6] {
			m.set(6, i, i%2 == 0)
		}
	}
}

// reserveInfo sets the permanent dark module and reserves the cells
// that receive format and version information after mask selection.
func (m *matrix) reserveInfo() {
	siz := m.siz
	m.set(8, siz-8, true)
	for i := 0; i <= 8; i++ {
		m.res[8][i] = true
		m.res[i][8] = true
	}
	for i := siz - 8; i < siz; i++ {
		m.res[8][i] = true
	}
	for i := siz - 7; i < siz; i++ {
		m.res[i][8] = true
	}
	if m.v >= 7 {
		for i := 0; i < 18; i++ {
			m.res[siz-11+i%3][i/3] = true
			m.res[i/3][siz-11+i%3] = true
		}
	}
}

// place writes the bit stream into the unreserved cells in zigzag
// scan order: column pairs from the right edge, alternating upward
// and downward, skipping the vertical timing column.
func (m *matrix) place(s bitStream) {
	up := true
	for right := m.siz - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for i := 0; i < m.siz; i++ {
			y := i
			if up {
				y = m.siz - 1 - i
			}
			for x := right; x > right-2; x-- {
				if !m.res[y][x] {
					m.mod[y][x] = s.Next() != 0
				}
			}
		}
		up = !up
	}
}

// Mask patterns.  maskTest[i] reports whether mask i flips the
// module in column x, row y.
//
//	0: ▄▀▄▀▄▀  1: ▄▄▄▄▄▄  2:  ██ ██  3: ▄█▀▄█▀  4:   ███   5: ▄▄▄▄▄▄  6:   ▄▄▄   7: ▄█▄▀ ▀
//	   ▄▀▄▀▄▀     ▄▄▄▄▄▄      ██ ██     ▀▄█▀▄█     ███        █▀▄▀█      ▄▀▄ █      ▄▀█▀▄
//	   ▄▀▄▀▄▀     ▄▄▄▄▄▄      ██ ██     █▀▄█▀▄        ███     ██▄██      █▄▄▀       ▄  ▀█
var maskTest = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// masked returns a copy of the module grid with the mask applied to
// the unreserved cells and the format and version information for
// that mask written over the reserved info cells.
func (m *matrix) masked(l Level, mask int) [][]bool {
	grid := make([][]bool, m.siz)
	test := maskTest[mask]
	for y, row := range m.mod {
		grid[y] = append([]bool(nil), row...)
		for x := range grid[y] {
			if !m.res[y][x] && test(x, y) {
				grid[y][x] = !grid[y][x]
			}
		}
	}
	writeFormat(grid, l, mask)
	if m.v >= 7 {
		writeVersion(grid, m.v)
	}
	return grid
}

// code applies each of the eight masks in turn and returns the Code
// with the smallest penalty, breaking ties toward the lower mask.
func (m *matrix) code(l Level) *Code {
	var best [][]bool
	pen := 1 << 30 // largest penalty is far below 1<<30
	for mask := range maskTest {
		g := m.masked(l, mask)
		if p := penalty(g); p < pen {
			best, pen = g, p
		}
	}
	return &Code{Module: best, Size: m.siz, Version: m.v}
}

// formatInfo returns the 15 bit format word for level l and mask:
// the five information bits followed by their BCH(15,5) remainder
// modulo x¹⁰+x⁸+x⁵+x⁴+x²+x+1, xored with 0x5412.
func formatInfo(l Level, mask int) uint32 {
	fb := l.indicator()<<13 | uint32(mask)<<10
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&(0x400<<i) != 0 {
			rem ^= 0x537 << i
		}
	}
	return (fb | rem) ^ 0x5412
}

// writeFormat writes the format word to its two locations, LSB
// first, bit 0 nearest the top left finder, and re-asserts the
// permanent dark module.
func writeFormat(grid [][]bool, l Level, mask int) {
	siz := len(grid)
	fb := formatInfo(l, mask)
	for i := 0; i < 15; i++ {
		bit := fb>>i&1 != 0
		// vertical copy along column 8, skipping the timing row
		switch {
		case i < 6:
			grid[i][8] = bit
		case i == 6:
			grid[7][8] = bit
		case i == 7:
			grid[8][8] = bit
		default:
			grid[siz-15+i][8] = bit
		}
		// horizontal copy along row 8, skipping the timing column
		switch {
		case i < 8:
			grid[8][siz-1-i] = bit
		case i == 8:
			grid[8][7] = bit
		default:
			grid[8][14-i] = bit
		}
	}
	grid[siz-8][8] = true
}

// versionInfo returns the 18 bit version word: the six version bits
// followed by their BCH(18,6) remainder modulo
// x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1.
func versionInfo(v Version) uint32 {
	vb := uint32(v) << 12
	rem := vb
	for i := 5; i >= 0; i-- {
		if rem&(0x1000<<i) != 0 {
			rem ^= 0x1f25 << i
		}
	}
	return vb | rem
}

// writeVersion writes the version word to the 6×3 block above the
// bottom left finder and its transpose left of the top right finder.
func writeVersion(grid [][]bool, v Version) {
	siz := len(grid)
	vb := versionInfo(v)
	for i := 0; i < 18; i++ {
		bit := vb>>i&1 != 0
		grid[siz-11+i%3][i/3] = bit
		grid[i/3][siz-11+i%3] = bit
	}
}

// Finder-like sequences scored by penalty rule 3: a dark-light-dark
// 1:1:3:1:1 run with four light modules on one side.
var (
	findB = [11]bool{true, false, true, true, true, false, true,
		false, false, false, false}
	findA = [11]bool{false, false, false, false, true, false, true,
		true, true, false, true}
)

// penalty returns the penalty score of a finished grid, the sum of
// four rules:
//
//   - runs of n >= 5 same-colour modules in a row or column: n-2
//   - 2×2 blocks of one colour, overlaps included: 3 each
//   - finder-like sequences in either orientation: 40 each
//   - dark module balance: 10 per full 5% deviation from 50%
func penalty(grid [][]bool) int {
	siz := len(grid)
	p := 0
	dark := 0
	for y := 0; y < siz; y++ {
		hrun, vrun := 1, 1
		for x := 0; x < siz; x++ {
			if grid[y][x] {
				dark++
			}
			// horizontal and vertical runs; y doubles as the
			// column index for the vertical scan
			if x > 0 {
				if grid[y][x] == grid[y][x-1] {
					hrun++
				} else {
					if hrun >= 5 {
						p += hrun - 2
					}
					hrun = 1
				}
				if grid[x][y] == grid[x-1][y] {
					vrun++
				} else {
					if vrun >= 5 {
						p += vrun - 2
					}
					vrun = 1
				}
			}
			if y < siz-1 && x < siz-1 &&
				grid[y][x] == grid[y][x+1] &&
				grid[y][x] == grid[y+1][x] &&
				grid[y][x] == grid[y+1][x+1] {
				p += 3
			}
			if x+len(findB) <= siz {
				h, v := 3, 3 // bits 0,1: B matches, A matches
				for i := range findB {
					if grid[y][x+i] != findB[i] {
						h &^= 1
					}
					if grid[y][x+i] != findA[i] {
						h &^= 2
					}
					if grid[x+i][y] != findB[i] {
						v &^= 1
					}
					if grid[x+i][y] != findA[i] {
						v &^= 2
					}
					if h|v == 0 {
						break
					}
				}
				for b := h | v<<2; b != 0; b &= b - 1 {
					p += 40
				}
			}
		}
		if hrun >= 5 {
			p += hrun - 2
		}
		if vrun >= 5 {
			p += vrun - 2
		}
	}
	total := siz * siz
	dev := dark*100 - 50*total
	if dev < 0 {
		dev = -dev
	}
	p += dev / (5 * total) * 10
	return p
}
