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

// Epsilon values follow a tiered scheme: a shared baseline used throughout
// orientation and containment tests, a higher-precision (smaller)
// tolerance for edge cases that need tighter discrimination, and a
// lower-precision (larger) tolerance for coarse proximity tests. Only
// EpsBaseline and EpsInt are exercised by the validator's hot path; the
// others are exposed for callers building their own predicates on Point
// and IntPoint so nobody reaches for an ad-hoc literal.
const (
	// EpsBaseline is the default orientation tolerance: cross products
	// with absolute value at or below this are treated as collinear.
	EpsBaseline = 1e-8

	// EpsHigh is a tighter tolerance for tests that must not tolerate the
	// baseline's slack (e.g. detecting an exact corner crossing during
	// Bresenham stepping).
	EpsHigh = 1.0 / 4096 / 4096 / 16

	// EpsLow is a looser tolerance for coarse proximity tests.
	EpsLow = 1.0 / 4096 / 16

	// EpsVeryLow is the loosest tolerance in the scheme.
	EpsVeryLow = 1.0 / 4096 / 2

	// EpsInt is the tolerance used to decide whether a floating-point
	// coordinate should be treated as an integer (on a grid line/corner).
	EpsInt = 1e-6

	// MinSegmentLength is the minimum Euclidean distance between two
	// consecutive waypoints; shorter segments are rejected as degenerate.
	MinSegmentLength = 1e-2
)
