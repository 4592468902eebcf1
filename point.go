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

	"seehuhn.de/go/geom/vec"
)

// Orientation is the sign of a 2D cross product.
type Orientation int

const (
	CW Orientation = iota - 1
	Colinear
	CCW
)

// Point is a floating-point position or direction vector in the
// validator's y-up grid space. It mirrors seehuhn.de/go/geom/vec.Vec2's
// field layout so callers can convert freely at the boundary (see
// FromVec/Point.Vec), but carries its own methods: the orientation and
// containment predicates the validator needs are not part of vec.Vec2's
// API and don't belong bolted onto a general-purpose vector type from an
// unrelated module.
type Point struct {
	X, Y float64
}

// FromVec converts a seehuhn.de/go/geom vector into a Point.
func FromVec(v vec.Vec2) Point { return Point{X: v.X, Y: v.Y} }

// Vec converts a Point into a seehuhn.de/go/geom vector.
func (p Point) Vec() vec.Vec2 { return vec.Vec2{X: p.X, Y: p.Y} }

func (p Point) Add(o Point) Point   { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point   { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Neg() Point          { return Point{-p.X, -p.Y} }

// Cross returns the Z component of the 3D cross product u × v.
func (u Point) Cross(v Point) float64 { return u.X*v.Y - u.Y*v.X }

// Dot returns the dot product u · v.
func (u Point) Dot(v Point) float64 { return u.X*v.X + u.Y*v.Y }

func (u Point) LengthSquared() float64 { return u.Dot(u) }
func (u Point) Length() float64        { return math.Sqrt(u.LengthSquared()) }

func isCW(c float64) bool    { return c < -EpsBaseline }
func isCCW(c float64) bool   { return c > EpsBaseline }
func isColinear(c float64) bool { return math.Abs(c) <= EpsBaseline }

// IsCW reports whether v lies clockwise of u (u × v < 0).
func (u Point) IsCW(v Point) bool { return isCW(u.Cross(v)) }

// IsCCW reports whether v lies counter-clockwise of u (u × v > 0).
func (u Point) IsCCW(v Point) bool { return isCCW(u.Cross(v)) }

// IsColinearWith reports whether u and v point along the same line.
func (u Point) IsColinearWith(v Point) bool { return isColinear(u.Cross(v)) }

// Dir classifies v relative to u.
func (u Point) Dir(v Point) Orientation {
	c := u.Cross(v)
	switch {
	case isCW(c):
		return CW
	case isCCW(c):
		return CCW
	default:
		return Colinear
	}
}

// IsBetweenCCW reports whether direction u lies strictly inside the
// angular sector swept counter-clockwise from a to b (exclusive of a and
// b). When the sector spans at most 180° (b is not clockwise of a) this
// is the conjunction a.IsCCW(u) && u.IsCCW(b): a, then u, then b all in
// CCW order. For a sector spanning more than 180° it is the disjunction
// of the same two tests.
func (u Point) IsBetweenCCW(a, b Point) bool {
	if !a.IsCW(b) {
		return a.IsCCW(u) && u.IsCCW(b)
	}
	return a.IsCCW(u) || u.IsCCW(b)
}

// IsBetweenCW is the mirror of IsBetweenCCW for a sector swept clockwise
// from a to b.
func (u Point) IsBetweenCW(a, b Point) bool {
	if !a.IsCCW(b) {
		return a.IsCW(u) && u.IsCW(b)
	}
	return a.IsCW(u) || u.IsCW(b)
}

// IsOnSegment reports whether the point x lies on the closed segment
// starting at a with direction ab (x = a + t*ab, 0 <= t <= 1).
func (x Point) IsOnSegment(a, ab Point) bool {
	rel := x.Sub(a)
	if !rel.IsColinearWith(ab) {
		return false
	}
	return collinearPointInRange(rel, ab)
}

// collinearPointInRange assumes rel is (numerically) parallel to ab and
// checks whether rel = t*ab for some t in [0, 1], using whichever axis
// has the larger magnitude in ab to avoid dividing by a near-zero
// component.
func collinearPointInRange(rel, ab Point) bool {
	var t float64
	if math.Abs(ab.X) >= math.Abs(ab.Y) {
		if ab.X == 0 {
			return isColinear(rel.X) && isColinear(rel.Y)
		}
		t = rel.X / ab.X
	} else {
		t = rel.Y / ab.Y
	}
	return t >= -EpsBaseline && t <= 1+EpsBaseline
}

// SegmentIntersect tests two parametric segments a+t*av and b+s*bv for
// intersection, returning the two parameters when they cross within both
// segments' bounds. ok is false when the segments are parallel.
func SegmentIntersect(a, av, b, bv Point) (t, s float64, ok bool) {
	scale := av.Cross(bv)
	if isColinear(scale) {
		return 0, 0, false
	}
	diff := b.Sub(a)
	t = diff.Cross(bv) / scale
	s = diff.Cross(av) / scale
	ok = t >= -EpsBaseline && t <= 1+EpsBaseline && s >= -EpsBaseline && s <= 1+EpsBaseline
	return t, s, ok
}

func isNearInt(v float64) bool { return math.Abs(v-math.Round(v)) <= EpsInt }

// IsIntegerX reports whether p's X coordinate is within EpsInt of an
// integer.
func (p Point) IsIntegerX() bool { return isNearInt(p.X) }

// IsIntegerY reports whether p's Y coordinate is within EpsInt of an
// integer.
func (p Point) IsIntegerY() bool { return isNearInt(p.Y) }

// IsInteger reports whether both coordinates of p are integral.
func (p Point) IsInteger() bool { return p.IsIntegerX() && p.IsIntegerY() }

// FloorToCell rounds an integer-valued coordinate to its nearest int,
// snapping away small floating point drift before it can bias which
// cell a boundary waypoint is attributed to.
func FloorToCell(v float64) int32 { return int32(math.Round(v)) }
