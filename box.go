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

// CellBox is the unit square [X, X+1] x [Y, Y+1] belonging to grid cell
// (X, Y), used by the visibility scan to test whether a segment's
// endpoints or interior cross a specific blocked cell.
type CellBox struct {
	X, Y int32
}

// Corner returns one of the box's four corners: 0=SW, 1=SE, 2=NW, 3=NE.
func (b CellBox) Corner(id int) Point {
	x, y := float64(b.X), float64(b.Y)
	switch id {
	case 0:
		return Point{x, y}
	case 1:
		return Point{x + 1, y}
	case 2:
		return Point{x, y + 1}
	default:
		return Point{x + 1, y + 1}
	}
}

// Side returns the two endpoints of one of the box's four sides, in the
// order used by the visibility scan's cellSegments dispatch: 0 is the
// left side traversed upward (SW->NW), 1 the top traversed rightward
// (NW->NE), 2 the right side traversed downward (NE->SE), 3 the bottom
// traversed leftward (SE->SW).
func (b CellBox) Side(id int) (p0, p1 Point) {
	switch id {
	case 0:
		return b.Corner(0), b.Corner(2)
	case 1:
		return b.Corner(2), b.Corner(3)
	case 2:
		return b.Corner(3), b.Corner(1)
	default:
		return b.Corner(1), b.Corner(0)
	}
}

// StrictlyContains reports whether p lies strictly inside the box's
// interior (not on any edge).
func (b CellBox) StrictlyContains(p Point) bool {
	x, y := float64(b.X), float64(b.Y)
	return p.X > x+EpsBaseline && p.X < x+1-EpsBaseline &&
		p.Y > y+EpsBaseline && p.Y < y+1-EpsBaseline
}

// GridBounds is the closed rectangle [0, width] x [0, height] that every
// transformed waypoint must fall within.
type GridBounds struct {
	Width, Height int32
}

// Contains reports whether p falls within the closed bounds, allowing a
// small epsilon so a waypoint placed exactly on the outer edge by an
// upstream float computation isn't spuriously rejected.
func (g GridBounds) Contains(p Point) bool {
	return p.X >= -EpsBaseline && p.X <= float64(g.Width)+EpsBaseline &&
		p.Y >= -EpsBaseline && p.Y <= float64(g.Height)+EpsBaseline
}
