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

func mustGrid(t *testing.T, rows []string) *BitGrid {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	buf := make([]bool, 0, width*height)
	for _, row := range rows {
		if len(row) != width {
			t.Fatalf("uneven row width in test map")
		}
		for _, c := range row {
			buf = append(buf, c == '.')
		}
	}
	g, err := NewBitGrid(buf, width, height)
	if err != nil {
		t.Fatalf("NewBitGrid: %v", err)
	}
	return g
}

func TestNewBitGridRejectsBadInput(t *testing.T) {
	if _, err := NewBitGrid([]bool{true}, 0, 1); err != ErrEmptyGrid {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
	if _, err := NewBitGrid([]bool{true, true}, 2, 2); err != ErrDimensionMismatch {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestBitGridTraversableRoundTrip(t *testing.T) {
	g := mustGrid(t, []string{
		".#.",
		"...",
		"#..",
	})
	// Input row 0 (".#.") lands at grid row 2, row 1 ("...") stays at
	// grid row 1, row 2 ("#..") lands at grid row 0.
	tests := []struct {
		x, y int32
		want bool
	}{
		{0, 0, false}, {1, 0, true}, {2, 0, true},
		{0, 1, true}, {1, 1, true}, {2, 1, true},
		{0, 2, true}, {1, 2, false}, {2, 2, true},
	}
	for _, tc := range tests {
		if got := g.Traversable(tc.x, tc.y); got != tc.want {
			t.Errorf("Traversable(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
		if got := g.Blocked(tc.x, tc.y); got == tc.want {
			t.Errorf("Blocked(%d,%d) = %v, want %v", tc.x, tc.y, got, !tc.want)
		}
	}
}

func TestBitGridBorderIsBlocked(t *testing.T) {
	g := mustGrid(t, []string{".."})
	tests := [][2]int32{{-1, 0}, {2, 0}, {0, -1}, {0, 1}}
	for _, xy := range tests {
		if g.Traversable(xy[0], xy[1]) {
			t.Errorf("Traversable(%d,%d) = true, want false (outside grid)", xy[0], xy[1])
		}
	}
}

func TestBitGridCorner2x2(t *testing.T) {
	// A single blocked cell at (1,1) in a 3x3 all-open-otherwise grid.
	// Corner (1,1) sits SW of cell (1,1), so only the NE quadrant bit
	// should be set.
	g := mustGrid(t, []string{
		"...",
		".#.",
		"...",
	})
	if got := g.Corner2x2(1, 1); got != patNE {
		t.Errorf("Corner2x2(1,1) = %04b, want %04b (patNE)", got, patNE)
	}
	// Corner (2,1) has (1,1) as its NW neighbor cell.
	if got := g.Corner2x2(2, 1); got != patNW {
		t.Errorf("Corner2x2(2,1) = %04b, want %04b (patNW)", got, patNW)
	}

	allOpen := mustGrid(t, []string{"..", ".."})
	if got := allOpen.Corner2x2(1, 1); got != 0 {
		t.Errorf("Corner2x2(1,1) on an all-open grid = %04b, want 0", got)
	}
}

func TestBitGridEdgeHV(t *testing.T) {
	g := mustGrid(t, []string{
		"#.",
		".#",
	})
	// Input row 0 ("#.") lands at grid row 1, input row 1 (".#") lands
	// at grid row 0, so grid row 0 reads ".#" and grid row 1 reads "#.".
	// Vertical grid line x=1 at row y=0: left cell (0,0)=open,
	// right cell (1,0)=blocked.
	if got := g.EdgeH(1, 0); got != 0b10 {
		t.Errorf("EdgeH(1,0) = %02b, want %02b", got, 0b10)
	}
	// Horizontal grid line y=1 at column x=0: below cell (0,0)=open,
	// above cell (0,1)=blocked.
	if got := g.EdgeV(0, 1); got != 0b10 {
		t.Errorf("EdgeV(0,1) = %02b, want %02b", got, 0b10)
	}
}

func TestBitGridPopCount(t *testing.T) {
	g := mustGrid(t, []string{
		".#.",
		"...",
		"#..",
	})
	if got := g.PopCount(); got != 7 {
		t.Errorf("PopCount() = %d, want 7", got)
	}
}
