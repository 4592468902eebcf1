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

import "math"

// cellSegments names the one or two cell sides (CellBox.Side indices) a
// segment first crosses, chosen from the sign of its direction. The
// second side is -1 for a purely axis-aligned direction, which only ever
// grazes one side of a cell.
type cellSegments struct {
	primary   int
	secondary int
}

func segmentsFor(uv Point) cellSegments {
	sx, sy := signEps(uv.X), signEps(uv.Y)
	switch sx {
	case 1:
		switch sy {
		case 1:
			return cellSegments{3, 0}
		case -1:
			return cellSegments{0, 1}
		default:
			return cellSegments{0, -1}
		}
	case -1:
		switch sy {
		case 1:
			return cellSegments{2, 3}
		case -1:
			return cellSegments{1, 2}
		default:
			return cellSegments{2, -1}
		}
	default:
		if sy == 1 {
			return cellSegments{3, -1}
		}
		return cellSegments{1, -1}
	}
}

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < EpsBaseline && math.Abs(a.Y-b.Y) < EpsBaseline
}

// segmentBlocked walks every cell the segment u->w crosses and returns
// true as soon as one of three blocking conditions fires: an endpoint
// strictly inside a blocked cell, an exact corner hit into a blocked
// wedge, or an interior crossing of a blocked cell's side.
func (v *Validator) segmentBlocked(u, w Point) bool {
	uv := w.Sub(u)
	segs := segmentsFor(uv)
	blocked := false
	walkSegmentCells(u, w, func(x, y int32) {
		if blocked {
			return
		}
		if v.cellBlocksSegment(x, y, u, w, uv, segs) {
			blocked = true
		}
	})
	return blocked
}

func (v *Validator) cellBlocksSegment(x, y int32, u, w, uv Point, segs cellSegments) bool {
	box := CellBox{X: x, Y: y}

	at := Point{X: float64(x), Y: float64(y)}
	if at.IsOnSegment(u, uv) && !pointsClose(at, u) && !pointsClose(at, w) {
		pattern := v.grid.Corner2x2(x, y)
		if pattern == 0 {
			return false
		}
		p0, p1, ok := CornerWedge(pattern)
		if !ok {
			return true // fully blocked or bow-tie: every direction is blocked at this corner
		}
		return uv.IsBetweenCW(p0, p1)
	}

	if v.grid.Traversable(x, y) {
		return false
	}

	if box.StrictlyContains(u) || box.StrictlyContains(w) {
		return true
	}

	p0, p1 := box.Side(segs.primary)
	p01 := p1.Sub(p0)
	if p01.IsCCW(u.Sub(p0)) && p01.IsCW(w.Sub(p0)) && uv.IsBetweenCCW(p0.Sub(u), p1.Sub(u)) {
		return true
	}

	if segs.secondary >= 0 {
		_, p2 := box.Side(segs.secondary)
		p12 := p2.Sub(p1)
		if p12.IsCCW(u.Sub(p1)) && p12.IsCW(w.Sub(p1)) && uv.IsBetweenCCW(p1.Sub(u), p2.Sub(u)) {
			return true
		}
	}

	return false
}
