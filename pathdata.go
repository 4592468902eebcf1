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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness bounds the deviation, in grid units, allowed between a
// curved path segment and its flattened line-segment approximation.
const DefaultFlatness = 0.1

// WaypointsFromPath flattens a seehuhn.de/go/geom/path.Data — built from
// straight and curved segments alike, e.g. by a vector map editor — into
// the waypoint slice Validator.Validate expects. Quadratic commands are
// subdivided by bounding the curve's deviation from its control-point
// chord against flatness; cubic commands use Wang's formula for the
// subdivision count. Both emit Points instead of device-space edges.
func WaypointsFromPath(p *path.Data, flatness float64) []Point {
	if flatness <= 0 {
		flatness = DefaultFlatness
	}

	var pts []Point
	var current, subpathStart vec.Vec2
	coordIdx := 0

	emit := func(to vec.Vec2) {
		pts = append(pts, FromVec(to))
	}

	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpathStart = current
			if len(pts) == 0 {
				pts = append(pts, FromVec(current))
			}
			coordIdx++

		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			emit(current)
			coordIdx++

		case path.CmdQuadTo:
			p1, p2 := p.Coords[coordIdx], p.Coords[coordIdx+1]
			flattenQuadratic(current, p1, p2, flatness, emit)
			current = p2
			coordIdx += 2

		case path.CmdCubeTo:
			p1, p2, p3 := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			flattenCubic(current, p1, p2, p3, flatness, emit)
			current = p3
			coordIdx += 3

		case path.CmdClose:
			if current != subpathStart {
				emit(subpathStart)
			}
			current = subpathStart
		}
	}

	return pts
}

func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(to vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if err := e.Length(); err > flatness {
		n = int(math.Ceil(math.Sqrt(err / flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(pt)
	}
}

func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2, t2 := omt*omt, t*t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(pt)
	}
}
