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

package main

import "flag"

// Config holds the command-line parameters for the gridpath CLI.
type Config struct {
	Map        string
	Path       string
	Report     string
	Threshold  int
	GridWidth  int
	GridHeight int
	Visualize  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Threshold: 128}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Map, "map", c.Map, "path to a map file (.txt ascii or .png)")
	fs.StringVar(&c.Path, "path", c.Path, "path to a waypoint file, one \"x y\" pair per line")
	fs.StringVar(&c.Report, "report", c.Report, "write a PDF visualization to this path")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "png luminance threshold below which a pixel is blocked")
	fs.IntVar(&c.GridWidth, "grid-width", c.GridWidth, "grid columns to resample a png map to (0 = use image size)")
	fs.IntVar(&c.GridHeight, "grid-height", c.GridHeight, "grid rows to resample a png map to (0 = use image size)")
	fs.BoolVar(&c.Visualize, "visualize", c.Visualize, "show an interactive terminal view of the grid and path")
}
