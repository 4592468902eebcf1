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

// Package report renders a validated (or rejected) path over its grid to a
// PDF page, for visually inspecting why Validate returned the index it did.
package report

import (
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/anyangle/gridpath"
)

// CellSize is the side length, in PDF points, of one grid cell in the
// rendered page.
const CellSize = 16.0

// Options controls what Write draws in addition to the grid and path.
type Options struct {
	// FailIndex is the index Validate returned. A value >= 0 marks that
	// waypoint (or the start of that segment) with a hollow circle; -1
	// draws no marker.
	FailIndex int
}

// Write renders grid, with path drawn over it, to a new single-page PDF at
// path pdfPath. Blocked cells are shaded dark gray; traversable cells are
// left white. The path is drawn as a stroked red polyline, and if opts
// selects a failing waypoint it is circled in orange.
func Write(pdfPath string, grid *gridpath.BitGrid, path []gridpath.Point, opts Options) error {
	w, h := grid.Width(), grid.Height()
	paper := &pdf.Rectangle{
		URx: float64(w) * CellSize,
		URy: float64(h) * CellSize,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("report: creating page: %w", err)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	page.SetFillColor(color.DeviceGray(0.35))
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			if grid.Traversable(x, y) {
				continue
			}
			// Grid row 0 is the bottom of the map, which already matches
			// PDF space's bottom-up y axis, so no flip is needed here.
			px, py := float64(x)*CellSize, float64(y)*CellSize
			page.Rectangle(px, py, CellSize, CellSize)
		}
	}
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5)
	for i := int32(1); i < w; i++ {
		x := float64(i) * CellSize
		page.MoveTo(x, 0)
		page.LineTo(x, paper.URy)
	}
	for i := int32(1); i < h; i++ {
		y := float64(i) * CellSize
		page.MoveTo(0, y)
		page.LineTo(paper.URx, y)
	}
	page.Stroke()

	if len(path) > 0 {
		toPage := func(p gridpath.Point) (float64, float64) {
			return p.X * CellSize, (float64(h) - p.Y) * CellSize
		}
		page.SetStrokeColor(color.DeviceRGB{0.85, 0.1, 0.1})
		page.SetLineWidth(2)
		x0, y0 := toPage(path[0])
		page.MoveTo(x0, y0)
		for _, wp := range path[1:] {
			x, y := toPage(wp)
			page.LineTo(x, y)
		}
		page.Stroke()

		if opts.FailIndex >= 0 && opts.FailIndex < len(path) {
			x, y := toPage(path[opts.FailIndex])
			const r = CellSize * 0.3
			const kappa = 0.5522847498
			k := r * kappa
			page.SetStrokeColor(color.DeviceRGB{1, 0.7, 0})
			page.SetLineWidth(2)
			// A circle approximated by four cubic Bézier arcs, the
			// standard magic-constant kappa construction.
			page.MoveTo(x+r, y)
			page.CurveTo(x+r, y+k, x+k, y+r, x, y+r)
			page.CurveTo(x-k, y+r, x-r, y+k, x-r, y)
			page.CurveTo(x-r, y-k, x-k, y-r, x, y-r)
			page.CurveTo(x+k, y-r, x+r, y-k, x+r, y)
			page.Stroke()
		}
	}

	return page.Close()
}
