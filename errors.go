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

import "errors"

// Precondition violations are asserted at the boundary, never returned as
// a domain result. Domain results (out of bounds, blocked traversal,
// degenerate segment) are reported as the ordinary -1/index return value
// of Validate, not as errors.
var (
	ErrEmptyGrid          = errors.New("gridpath: grid has zero width or height")
	ErrDimensionMismatch  = errors.New("gridpath: map buffer length does not match width*height")
	ErrNonFinitePoint     = errors.New("gridpath: waypoint coordinate is not finite")
	ErrGridNotSet         = errors.New("gridpath: no grid bound to validator")
	ErrGridAlreadyBound   = errors.New("gridpath: grid already bound; call ResetGlobal before rebinding")
	ErrCoordinateOverflow = errors.New("gridpath: integer coordinate exceeds safe orientation-predicate range")
)
