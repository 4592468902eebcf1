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

// IntPoint is the exact-arithmetic counterpart to Point, for coordinates
// known to land exactly on grid lines. Cross products of two coordinates
// each within [-16383, 16383] (14-15 bits) fit in an int64 without risk
// of overflow, and IntPoint deliberately widens to int64 for every
// product so callers never have to reason about intermediate overflow
// themselves.
type IntPoint struct {
	X, Y int64
}

// maxSafeCoordinate is the largest magnitude a coordinate may have while
// still guaranteeing IntPoint.Cross and IntPoint.Dot cannot overflow
// int64: two such coordinates multiplied, then summed with another such
// product, stays well within int64's range.
const maxSafeCoordinate = 1 << 30

// NewIntPoint validates x and y against maxSafeCoordinate before
// returning an IntPoint, giving callers that build points from untrusted
// or accumulated integer data a way to catch overflow risk at the
// boundary instead of silently wrapping inside Cross/Dot.
func NewIntPoint(x, y int64) (IntPoint, error) {
	if x > maxSafeCoordinate || x < -maxSafeCoordinate || y > maxSafeCoordinate || y < -maxSafeCoordinate {
		return IntPoint{}, ErrCoordinateOverflow
	}
	return IntPoint{X: x, Y: y}, nil
}

func (p IntPoint) Add(o IntPoint) IntPoint { return IntPoint{p.X + o.X, p.Y + o.Y} }
func (p IntPoint) Sub(o IntPoint) IntPoint { return IntPoint{p.X - o.X, p.Y - o.Y} }

// Cross returns the Z component of u × v as an exact int64 product.
func (u IntPoint) Cross(v IntPoint) int64 { return u.X*v.Y - u.Y*v.X }

func (u IntPoint) Dot(v IntPoint) int64 { return u.X*v.X + u.Y*v.Y }

// IsCW, IsCCW and IsColinearWith use zero tolerance: for exact integer
// coordinates the sign of the cross product is exact, so no epsilon is
// needed or wanted.
func (u IntPoint) IsCW(v IntPoint) bool           { return u.Cross(v) < 0 }
func (u IntPoint) IsCCW(v IntPoint) bool          { return u.Cross(v) > 0 }
func (u IntPoint) IsColinearWith(v IntPoint) bool { return u.Cross(v) == 0 }

func (u IntPoint) Dir(v IntPoint) Orientation {
	switch c := u.Cross(v); {
	case c < 0:
		return CW
	case c > 0:
		return CCW
	default:
		return Colinear
	}
}

// IsBetweenCCW mirrors Point.IsBetweenCCW with exact integer comparisons.
func (u IntPoint) IsBetweenCCW(a, b IntPoint) bool {
	if !a.IsCW(b) {
		return a.IsCCW(u) && u.IsCCW(b)
	}
	return a.IsCCW(u) || u.IsCCW(b)
}

// IsBetweenCW mirrors Point.IsBetweenCW with exact integer comparisons.
func (u IntPoint) IsBetweenCW(a, b IntPoint) bool {
	if !a.IsCCW(b) {
		return a.IsCW(u) && u.IsCW(b)
	}
	return a.IsCW(u) || u.IsCW(b)
}

// IsOnSegment reports whether x lies on the closed integer segment from a
// in direction ab, using a fraction (no division) so the test stays
// exact.
func (x IntPoint) IsOnSegment(a, ab IntPoint) bool {
	rel := x.Sub(a)
	if !rel.IsColinearWith(ab) {
		return false
	}
	// rel = t*ab for some real t; find t's numerator/denominator along
	// whichever axis of ab is non-zero and check 0 <= num/den <= 1
	// without dividing.
	var num, den int64
	if ab.X != 0 {
		num, den = rel.X, ab.X
	} else if ab.Y != 0 {
		num, den = rel.Y, ab.Y
	} else {
		return rel.X == 0 && rel.Y == 0
	}
	if den < 0 {
		num, den = -num, -den
	}
	return num >= 0 && num <= den
}

// ToPoint converts an IntPoint to its floating-point equivalent.
func (p IntPoint) ToPoint() Point { return Point{X: float64(p.X), Y: float64(p.Y)} }
