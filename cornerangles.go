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

// CellPattern is the 4-bit "which of the four cells around a grid corner
// are blocked" pattern read by BitGrid.Corner2x2. Bit 0 is SW, bit 1 is
// SE, bit 2 is NW, bit 3 is NE, cross-checked in cornerangles_test.go
// against a hand-worked example for every pattern.
type CellPattern uint8

const (
	patSW = 1 << iota
	patSE
	patNW
	patNE
)

var cornerWedges = map[CellPattern][2]Point{
	patNW:                       {{-1, 0}, {0, 1}},
	patNE:                       {{0, 1}, {1, 0}},
	patNW | patNE:               {{-1, 0}, {1, 0}},
	patSW:                       {{0, -1}, {-1, 0}},
	patSW | patNW:               {{0, -1}, {0, 1}},
	patSW | patNW | patNE:       {{0, -1}, {1, 0}},
	patSE:                       {{1, 0}, {0, -1}},
	patSE | patNE:               {{0, 1}, {0, -1}},
	patNW | patNE | patSE:       {{-1, 0}, {0, -1}},
	patSW | patSE:               {{1, 0}, {-1, 0}},
	patSW | patNW | patSE:       {{1, 0}, {0, 1}},
	patSW | patNE | patSE:       {{0, 1}, {-1, 0}},
}

// CornerWedge looks up the blocked angular sector (p0, p1 clockwise) for
// a 4-bit blocked-cell pattern. ok is false for the four patterns with no
// single wedge: fully open (0), fully blocked (all four bits), and the
// two diagonal "bow-tie" patterns (NW+SE, NE+SW), each handled as a
// special case by the validator.
func CornerWedge(pattern CellPattern) (p0, p1 Point, ok bool) {
	w, found := cornerWedges[pattern]
	if !found {
		return Point{}, Point{}, false
	}
	return w[0], w[1], true
}

// IsBowTie reports whether pattern is one of the two diagonal patterns
// (NW+SE or NE+SW) that block a corner without defining a single wedge.
func IsBowTie(pattern CellPattern) bool {
	return pattern == patNW|patSE || pattern == patSW|patNE
}
