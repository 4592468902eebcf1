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

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anyangle/gridpath"
)

func TestWriteProducesAPDFFile(t *testing.T) {
	grid, err := gridpath.NewBitGrid([]bool{
		true, false, true,
		true, true, true,
	}, 3, 2)
	if err != nil {
		t.Fatalf("NewBitGrid: %v", err)
	}

	path := []gridpath.Point{{0.5, 0.5}, {2.5, 1.5}}
	out := filepath.Join(t.TempDir(), "report.pdf")

	if err := Write(out, grid, path, Options{FailIndex: -1}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("expected a non-empty PDF file")
	}
}

func TestWriteWithFailureMarker(t *testing.T) {
	grid, err := gridpath.NewBitGrid([]bool{false, true}, 2, 1)
	if err != nil {
		t.Fatalf("NewBitGrid: %v", err)
	}
	path := []gridpath.Point{{0.5, 0.5}, {1.5, 0.5}}
	out := filepath.Join(t.TempDir(), "report.pdf")

	if err := Write(out, grid, path, Options{FailIndex: 0}); err != nil {
		t.Fatalf("Write with a failure marker: %v", err)
	}
}
