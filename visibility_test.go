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

import "testing"

func TestSegmentsForDispatch(t *testing.T) {
	tests := []struct {
		name string
		dir  Point
		want cellSegments
	}{
		{"northeast", Point{1, 1}, cellSegments{3, 0}},
		{"southeast", Point{1, -1}, cellSegments{0, 1}},
		{"northwest", Point{-1, 1}, cellSegments{2, 3}},
		{"southwest", Point{-1, -1}, cellSegments{1, 2}},
		{"due east", Point{1, 0}, cellSegments{0, -1}},
		{"due west", Point{-1, 0}, cellSegments{2, -1}},
		{"due north", Point{0, 1}, cellSegments{3, -1}},
		{"due south", Point{0, -1}, cellSegments{1, -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := segmentsFor(tc.dir); got != tc.want {
				t.Errorf("segmentsFor(%v) = %v, want %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestSegmentBlockedInteriorCrossing(t *testing.T) {
	grid := mustGrid(t, []string{".#."})
	v := &Validator{}
	v.bind(grid)
	if !v.segmentBlocked(Point{0, 0.5}, Point{3, 0.5}) {
		t.Errorf("expected segment through the blocked middle cell to be blocked")
	}
}

func TestSegmentBlockedOpenPath(t *testing.T) {
	grid := mustGrid(t, []string{"...", "...", "..."})
	v := &Validator{}
	v.bind(grid)
	if v.segmentBlocked(Point{0.5, 0.5}, Point{2.5, 2.5}) {
		t.Errorf("expected a diagonal through an all-open grid to be unblocked")
	}
}

func TestSegmentBlockedEndpointStrictlyInsideBlockedCell(t *testing.T) {
	grid := mustGrid(t, []string{"#."})
	v := &Validator{}
	v.bind(grid)
	if !v.segmentBlocked(Point{0.5, 0.5}, Point{1.5, 0.5}) {
		t.Errorf("expected a segment starting strictly inside a blocked cell to be blocked")
	}
}

func TestPointsClose(t *testing.T) {
	if !pointsClose(Point{1, 1}, Point{1 + EpsBaseline/2, 1}) {
		t.Errorf("expected points within half an epsilon to be close")
	}
	if pointsClose(Point{1, 1}, Point{1.1, 1}) {
		t.Errorf("expected distant points not to be close")
	}
}
