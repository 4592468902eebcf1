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

package mapio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// LoadPNG decodes a PNG occupancy map: pixels darker than threshold (a
// luminance cutoff in [0,255]) are blocked, everything else is traversable.
// gridWidth and gridHeight resample the decoded image to the target grid
// resolution using golang.org/x/image/draw's nearest-neighbor scaler, so a
// map authored at any pixel density can back a grid of a different size.
// Pass the image's own bounds to skip resampling.
func LoadPNG(r io.Reader, gridWidth, gridHeight int, threshold uint8) (traversable []bool, err error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("mapio: decoding png: %w", err)
	}
	if gridWidth <= 0 || gridHeight <= 0 {
		return nil, fmt.Errorf("mapio: invalid grid dimensions %dx%d", gridWidth, gridHeight)
	}

	src := img
	if b := img.Bounds(); b.Dx() != gridWidth || b.Dy() != gridHeight {
		dst := image.NewGray(image.Rect(0, 0, gridWidth, gridHeight))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		src = dst
	}

	traversable = make([]bool, gridWidth*gridHeight)
	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			gray := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			traversable[y*gridWidth+x] = gray.Y >= threshold
		}
	}
	return traversable, nil
}
