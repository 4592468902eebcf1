// github.com/anyangle/gridpath - an any-angle path validator for 2D grids
// Copyright (C) 2026  The gridpath Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gridpath

import "math/bits"

// gridPad is the padded border width around the traversability buffer. A
// single cell of padding is enough for every region shape the validator
// reads (1,1,2,2 / 1,0,2,1 / 0,1,1,2 all reach at most one cell outside
// [0,width)x[0,height)).
const gridPad = 1

// BitGrid is an immutable, bit-packed 2D traversability grid with a
// zeroed (blocked) padded border, so 2x2/2x1/1x2 neighborhood reads never
// need a boundary branch. Once built it is read-only: Traversable,
// Blocked and the region readers may be called concurrently from any
// number of goroutines.
type BitGrid struct {
	width, height int32
	stride        int32 // uint64 words per padded row
	rows          int32 // height + 2*gridPad
	words         []uint64
}

// NewBitGrid builds a grid from a row-major, top-row-first flat boolean
// buffer of length width*height. Input row 0 (the top row) is stored at
// grid row height-1, so that grid row 0 is the bottom row and coordinates
// read back in the same y-up sense Validate uses after its own y-flip.
func NewBitGrid(traversable []bool, width, height int) (*BitGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(traversable) != width*height {
		return nil, ErrDimensionMismatch
	}

	g := &BitGrid{
		width:  int32(width),
		height: int32(height),
		rows:   int32(height) + 2*gridPad,
	}
	g.stride = (int32(width) + 2*gridPad + 63) / 64
	g.words = make([]uint64, int(g.rows)*int(g.stride))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if traversable[y*width+x] {
				g.set(int32(x), int32(height)-1-int32(y), true)
			}
		}
	}
	return g, nil
}

// Width and Height return the grid's unpadded dimensions.
func (g *BitGrid) Width() int32  { return g.width }
func (g *BitGrid) Height() int32 { return g.height }

func (g *BitGrid) bitIndex(x, y int32) (word int32, bit uint, inRange bool) {
	xi := x + gridPad
	yi := y + gridPad
	if xi < 0 || yi < 0 || yi >= g.rows || xi >= g.stride*64 {
		return 0, 0, false
	}
	return yi*g.stride + xi/64, uint(xi % 64), true
}

func (g *BitGrid) set(x, y int32, v bool) {
	word, bit, ok := g.bitIndex(x, y)
	if !ok {
		return
	}
	if v {
		g.words[word] |= 1 << bit
	} else {
		g.words[word] &^= 1 << bit
	}
}

// Traversable reports whether cell (x, y) is open. Cells outside the
// grid, including its padded border, are always blocked.
func (g *BitGrid) Traversable(x, y int32) bool {
	word, bit, ok := g.bitIndex(x, y)
	if !ok {
		return false
	}
	return g.words[word]&(1<<bit) != 0
}

// Blocked is the complement of Traversable.
func (g *BitGrid) Blocked(x, y int32) bool { return !g.Traversable(x, y) }

// Corner2x2 reads the 4-bit blocked pattern of the 2x2 neighborhood
// around grid corner (x, y): bit 0 = SW (x-1,y-1), bit 1 = SE (x,y-1),
// bit 2 = NW (x-1,y), bit 3 = NE (x,y).
func (g *BitGrid) Corner2x2(x, y int32) CellPattern {
	var p CellPattern
	if g.Blocked(x-1, y-1) {
		p |= patSW
	}
	if g.Blocked(x, y-1) {
		p |= patSE
	}
	if g.Blocked(x-1, y) {
		p |= patNW
	}
	if g.Blocked(x, y) {
		p |= patNE
	}
	return p
}

// EdgeH reads the horizontal pair of cells straddling the vertical grid
// line at x, at row y: bit 0 = left cell (x-1,y), bit 1 = right cell
// (x,y). Blocked bits are set.
func (g *BitGrid) EdgeH(x, y int32) uint8 {
	var v uint8
	if g.Blocked(x-1, y) {
		v |= 1
	}
	if g.Blocked(x, y) {
		v |= 2
	}
	return v
}

// EdgeV reads the vertical pair of cells straddling the horizontal grid
// line at y, at column x: bit 0 = below cell (x,y-1), bit 1 = above cell
// (x,y). Blocked bits are set.
func (g *BitGrid) EdgeV(x, y int32) uint8 {
	var v uint8
	if g.Blocked(x, y-1) {
		v |= 1
	}
	if g.Blocked(x, y) {
		v |= 2
	}
	return v
}

// PopCount returns the number of traversable cells. The padded border is
// always zero, so a plain word-level popcount over the whole backing
// array already excludes it.
func (g *BitGrid) PopCount() int {
	total := 0
	for _, w := range g.words {
		total += bits.OnesCount64(w)
	}
	return total
}
