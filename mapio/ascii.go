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

// Package mapio loads occupancy grids from external representations —
// plain-text maps and PNG images — into the boolean buffers gridpath.NewBitGrid
// expects.
package mapio

import (
	"bufio"
	"fmt"
	"io"
)

// LoadASCII reads a rectangular text map, one row per line, '.' for
// traversable and any other byte, spaces included, for blocked; a row's
// width is its length in bytes. Empty lines are skipped. Rows are read
// top-to-bottom, matching the row-0-at-top convention gridpath.Validator
// expects on input. All rows must have equal width.
func LoadASCII(r io.Reader) (traversable []bool, width, height int, err error) {
	scanner := bufio.NewScanner(r)
	var rows [][]bool
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		row := make([]bool, len(line))
		for i, c := range line {
			row[i] = c == '.'
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, 0, 0, fmt.Errorf("mapio: row %d has width %d, want %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("mapio: reading ascii map: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, 0, fmt.Errorf("mapio: empty ascii map")
	}

	width, height = len(rows[0]), len(rows)
	traversable = make([]bool, width*height)
	for y, row := range rows {
		copy(traversable[y*width:(y+1)*width], row)
	}
	return traversable, width, height, nil
}
