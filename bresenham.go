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

// axisStepper is a major-axis stepping Bresenham enumerator. "major"/"minor"
// stand in for the classic axis-swap trick: whichever of X/Y dominates the
// segment is stepped one integer cell at a time (major), while the other
// (minor) is tracked as a float and only becomes an integer step when the
// walk crosses into the next minor-axis cell.
//
// A stepper is single-use scratch state built fresh by walkSegmentCells
// for one call; nothing here is shared across goroutines.
type axisStepper struct {
	axisIsY  bool
	axisMod  int32
	axisIMod int32

	majorPos, minorPos int32
	majorStep, majorEnd int32

	axisProg, axisInc float64
}

func signStep(v float64) int32 {
	if v < 0 {
		return -1
	}
	return 1
}

func signEps(v float64) int32 {
	switch {
	case v < -EpsBaseline:
		return -1
	case v > EpsBaseline:
		return 1
	default:
		return 0
	}
}

// newAxisStepper sets up a stepper for the directed segment a -> a+ab,
// extended by adjStartUnits cells on the start side and extraSteps cells
// past the end. ab must be non-zero.
func newAxisStepper(a, ab Point, adjStartUnits, extraSteps int32) *axisStepper {
	s := &axisStepper{axisIsY: math.Abs(ab.Y) >= math.Abs(ab.X)}

	var majorStart, minorStart, majorDelta, minorDelta float64
	if s.axisIsY {
		majorStart, minorStart = a.Y, a.X
		majorDelta, minorDelta = ab.Y, ab.X
	} else {
		majorStart, minorStart = a.X, a.Y
		majorDelta, minorDelta = ab.X, ab.Y
	}

	s.axisMod = signStep(majorDelta)
	majorEnd := int32(math.Ceil(math.Abs(majorDelta)))
	slope := minorDelta / math.Abs(majorDelta)
	s.axisIMod = signEps(slope)

	majorStart += float64(adjStartUnits) * float64(s.axisMod)
	minorStart += float64(adjStartUnits) * slope

	s.majorStep = adjStartUnits
	s.majorEnd = majorEnd + extraSteps

	var axisF, axisI float64
	if s.axisMod >= 0 {
		axisF = math.Floor(majorStart)
		if majorStart-axisF > 1-EpsInt {
			axisF++
			axisI = minorStart
		} else {
			axisI = minorStart - slope*(majorStart-axisF)
		}
		s.majorPos = int32(axisF)
	} else {
		axisF = math.Ceil(majorStart)
		if axisF-majorStart > 1-EpsInt {
			axisF--
			axisI = minorStart
		} else {
			axisI = minorStart - slope*(axisF-majorStart)
		}
		s.majorPos = int32(axisF) - 1
	}

	modi := math.Floor(axisI)
	modp := axisI - modi

	switch {
	case s.axisIMod > 0:
		if modp < EpsBaseline {
			modi -= float64(s.axisIMod)
			s.axisProg = 1 + modp
		} else {
			s.axisProg = modp
		}
		s.axisInc = slope
	case s.axisIMod < 0:
		switch {
		case modp < EpsBaseline:
			s.axisProg = 1 - modp
		case modp > 1-EpsBaseline:
			modi -= float64(s.axisIMod)
			s.axisProg = modp
		default:
			s.axisProg = 1 - modp
		}
		s.axisInc = -slope
	default:
		if modp > 1-EpsBaseline {
			modi++
		}
		s.axisProg = 0.5
		s.axisInc = 0
	}
	s.minorPos = int32(math.Floor(modi))

	return s
}

func (s *axisStepper) toXY(major, minor int32) (x, y int32) {
	if s.axisIsY {
		return minor, major
	}
	return major, minor
}

// walk enumerates every cell the segment crosses, calling visit for each.
// At an exact integer-boundary (corner) crossing it visits, in order, the
// pre-crossing cell, the cell across the corner along the major axis, and
// the post-crossing cell on the minor axis — so whichever
// of the corner's four cells has this exact corner as its own lower-left
// point is always among the cells visited, letting the caller run its
// corner-hit test against it. A plain (non-corner) minor-axis crossing
// visits just the pre- and post-crossing cells.
func (s *axisStepper) walk(visit func(x, y int32)) {
	majorPos, minorPos := s.majorPos, s.minorPos
	visitCell := func(maj, min int32) {
		x, y := s.toXY(maj, min)
		visit(x, y)
	}

	for step := s.majorStep; step <= s.majorEnd; step++ {
		visitCell(majorPos, minorPos)

		s.axisProg += s.axisInc
		for s.axisProg >= 1-EpsBaseline {
			s.axisProg -= 1
			if s.axisProg < EpsBaseline {
				visitCell(majorPos+s.axisMod, minorPos)
			}
			minorPos += s.axisIMod
			visitCell(majorPos, minorPos)
		}
		majorPos += s.axisMod
	}
}

// walkSegmentCells enumerates every cell the closed segment u->v crosses,
// extended by one cell before u and one past v so the visibility scan can
// test the cells immediately flanking each endpoint.
func walkSegmentCells(u, v Point, visit func(x, y int32)) {
	uv := v.Sub(u)
	s := newAxisStepper(u, uv, -1, 1)
	s.walk(visit)
}
