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
	"fmt"
	"math"
)

// Validator checks any-angle paths against a bound BitGrid. It owns no
// mutable per-call state: Validate allocates its own scratch buffers on
// every call, so a single Validator is safe to share across goroutines as
// long as they don't race Reset against it.
type Validator struct {
	grid   *BitGrid
	bounds GridBounds
}

// NewValidator returns a Validator bound to grid.
func NewValidator(grid *BitGrid) *Validator {
	v := &Validator{}
	v.bind(grid)
	return v
}

func (v *Validator) bind(grid *BitGrid) {
	v.grid = grid
	v.bounds = GridBounds{Width: grid.Width(), Height: grid.Height()}
}

// Grid returns the bound grid, or nil if none is bound.
func (v *Validator) Grid() *BitGrid { return v.grid }

// Reset rebinds the validator to a new grid. The old grid, if any, is
// immutable and unaffected; callers must not keep validating against v
// concurrently with a call to Reset.
func (v *Validator) Reset(grid *BitGrid) { v.bind(grid) }

// Validate checks path and returns -1 if every segment lies entirely in
// traversable space, or the zero-based index of the first offending
// waypoint or segment. A non-nil error indicates a precondition
// violation: no grid bound, or a non-finite coordinate. Precondition
// violations are never signaled via the returned index.
func (v *Validator) Validate(path []Point) (int, error) {
	if v.grid == nil {
		return 0, ErrGridNotSet
	}
	if len(path) <= 1 {
		return -1, nil
	}

	transformed := make([]Point, len(path))
	height := float64(v.grid.Height())
	for i, wp := range path {
		if !isFinite(wp) {
			return 0, fmt.Errorf("%w: waypoint %d", ErrNonFinitePoint, i)
		}
		transformed[i] = Point{X: wp.X, Y: height - wp.Y}
	}

	// Step 1: bounds and minimum segment length.
	for i, p := range transformed {
		if !v.bounds.Contains(p) {
			return i, nil
		}
		if i > 0 {
			seg := p.Sub(transformed[i-1])
			if seg.LengthSquared() < MinSegmentLength*MinSegmentLength {
				return i - 1, nil
			}
		}
	}

	// Step 2: per-waypoint corner legality.
	last := len(transformed) - 1
	for i, p := range transformed {
		var incoming, outgoing *Point
		if i > 0 {
			d := transformed[i-1].Sub(p)
			incoming = &d
		}
		if i < last {
			d := transformed[i+1].Sub(p)
			outgoing = &d
		}
		if !v.waypointLegal(p, incoming, outgoing, i == 0, i == last) {
			return i, nil
		}
	}

	// Step 3: per-segment visibility.
	for i := 0; i < last; i++ {
		if v.segmentBlocked(transformed[i], transformed[i+1]) {
			return i, nil
		}
	}

	return -1, nil
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func floorCell(v float64) int32 { return int32(math.Floor(v)) }

// waypointLegal dispatches a waypoint to the corner or edge legality check
// that applies to its position, or accepts it outright if it lies in a
// cell's interior.
func (v *Validator) waypointLegal(p Point, incoming, outgoing *Point, isFirst, isLast bool) bool {
	xInt, yInt := p.IsIntegerX(), p.IsIntegerY()
	switch {
	case xInt && yInt:
		x, y := FloorToCell(p.X), FloorToCell(p.Y)
		return v.cornerLegal(x, y, incoming, outgoing, isFirst, isLast)
	case xInt != yInt:
		return v.edgeLegal(p, xInt, incoming, outgoing)
	default:
		return true
	}
}

// cornerLegal checks a waypoint that lands exactly on a grid corner
// (x, y) against its 2x2 blocked pattern. See DESIGN.md for why this
// dispatches on the full 4-bit pattern rather than the low two bits.
func (v *Validator) cornerLegal(x, y int32, incoming, outgoing *Point, isFirst, isLast bool) bool {
	pattern := v.grid.Corner2x2(x, y)
	switch {
	case pattern == 0:
		return true
	case pattern == patSW|patSE|patNW|patNE:
		return false
	case pattern == patNW|patSE:
		return bowTieNWSELegal(incoming, outgoing, isFirst, isLast)
	case pattern == patSW|patNE:
		return bowTieSWNELegal(incoming, outgoing, isFirst, isLast)
	default:
		p0, p1, ok := CornerWedge(pattern)
		if !ok {
			return false
		}
		if outgoing != nil && outgoing.IsBetweenCW(p0, p1) {
			return false
		}
		if incoming != nil && incoming.IsBetweenCW(p0, p1) {
			return false
		}
		return true
	}
}

// bowTieNWSELegal handles the diagonal pattern NW+SE blocked (0b0110).
func bowTieNWSELegal(incoming, outgoing *Point, isFirst, isLast bool) bool {
	if isFirst || isLast {
		adj := outgoing
		if adj == nil {
			adj = incoming
		}
		return !adj.IsBetweenCCW(Point{1, 0}, Point{0, 1})
	}
	switch {
	case !incoming.IsBetweenCCW(Point{0, 1}, Point{1, 0}):
		return !outgoing.IsBetweenCCW(Point{0, 1}, Point{1, 0})
	case !incoming.IsBetweenCCW(Point{0, -1}, Point{-1, 0}):
		return !outgoing.IsBetweenCCW(Point{0, -1}, Point{-1, 0})
	default:
		return false
	}
}

// bowTieSWNELegal handles the diagonal pattern SW+NE blocked (0b1001).
// Every endpoint waypoint at this corner is invalid, regardless of
// direction — see DESIGN.md's note on the asymmetry between the two
// bow-tie patterns' endpoint policies.
func bowTieSWNELegal(incoming, outgoing *Point, isFirst, isLast bool) bool {
	if isFirst || isLast {
		return false
	}
	switch {
	case !incoming.IsBetweenCCW(Point{1, 0}, Point{0, -1}):
		return !outgoing.IsBetweenCCW(Point{1, 0}, Point{0, -1})
	case !incoming.IsBetweenCCW(Point{-1, 0}, Point{0, 1}):
		return !outgoing.IsBetweenCCW(Point{-1, 0}, Point{0, 1})
	default:
		return false
	}
}

// edgeLegal checks a waypoint that lies exactly on a grid line (one
// coordinate integer, the other not).
func (v *Validator) edgeLegal(p Point, xInt bool, incoming, outgoing *Point) bool {
	var edge uint8
	if xInt {
		x, y := FloorToCell(p.X), floorCell(p.Y)
		edge = v.grid.EdgeH(x, y)
	} else {
		x, y := floorCell(p.X), FloorToCell(p.Y)
		edge = v.grid.EdgeV(x, y)
	}

	switch edge {
	case 0b11:
		return false
	case 0b01, 0b10:
		var wall Point
		if xInt {
			if edge&0b01 != 0 {
				wall = Point{0, -1}
			} else {
				wall = Point{0, 1}
			}
		} else {
			if edge&0b01 != 0 {
				wall = Point{1, 0}
			} else {
				wall = Point{-1, 0}
			}
		}
		for _, adj := range [2]*Point{incoming, outgoing} {
			if adj != nil && wall.IsCW(*adj) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
