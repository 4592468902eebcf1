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

// Command gridpath validates an any-angle path against a 2D occupancy map
// from the command line, optionally rendering a PDF report or an
// interactive terminal view of the result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/anyangle/gridpath"
	"github.com/anyangle/gridpath/mapio"
	"github.com/anyangle/gridpath/report"
)

func main() {
	cfg := NewConfig()
	fs := flag.NewFlagSet("gridpath", flag.ExitOnError)
	cfg.Bind(fs)
	fs.Parse(os.Args[1:])

	if cfg.Map == "" || cfg.Path == "" {
		fmt.Fprintln(os.Stderr, "usage: gridpath -map <file> -path <file> [-report out.pdf] [-visualize]")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		gridpath.Logger().Error("gridpath run failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	grid, err := loadGrid(cfg)
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}

	waypoints, err := loadWaypoints(cfg.Path)
	if err != nil {
		return fmt.Errorf("loading path: %w", err)
	}

	v := gridpath.NewValidator(grid)
	idx, err := v.Validate(waypoints)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	if idx < 0 {
		fmt.Println("valid")
	} else {
		fmt.Printf("invalid at waypoint/segment %d\n", idx)
	}

	if cfg.Report != "" {
		if err := report.Write(cfg.Report, grid, waypoints, report.Options{FailIndex: idx}); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if cfg.Visualize {
		if err := visualize(grid, waypoints, idx); err != nil {
			return fmt.Errorf("visualizing: %w", err)
		}
	}

	return nil
}

func loadGrid(cfg *Config) (*gridpath.BitGrid, error) {
	f, err := os.Open(cfg.Map)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var traversable []bool
	var width, height int

	switch strings.ToLower(filepath.Ext(cfg.Map)) {
	case ".png":
		width, height = cfg.GridWidth, cfg.GridHeight
		if width == 0 || height == 0 {
			cfgImg, _, decodeErr := image.DecodeConfig(f)
			if decodeErr != nil {
				return nil, decodeErr
			}
			width, height = cfgImg.Width, cfgImg.Height
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				return nil, err
			}
		}
		traversable, err = mapio.LoadPNG(f, width, height, uint8(cfg.Threshold))
		if err != nil {
			return nil, err
		}
	default:
		traversable, width, height, err = mapio.LoadASCII(f)
		if err != nil {
			return nil, err
		}
	}

	return gridpath.NewBitGrid(traversable, width, height)
}

func loadWaypoints(path string) ([]gridpath.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pts []gridpath.Point
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"x y\", got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pts = append(pts, gridpath.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// visualize opens a terminal screen and draws the grid and path once,
// waiting for any key before exiting.
func visualize(grid *gridpath.BitGrid, waypoints []gridpath.Point, failIdx int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	blockedStyle := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	openStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	failStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	draw := func() {
		screen.Clear()
		w, h := grid.Width(), grid.Height()
		for y := int32(0); y < h; y++ {
			for x := int32(0); x < w; x++ {
				style := openStyle
				if !grid.Traversable(x, y) {
					style = blockedStyle
				}
				// grid row 0 is the bottom of the map; the screen's row 0
				// is its top, so flip to match the waypoint markers below,
				// which are already in top-row-first input coordinates.
				screen.SetContent(int(x), int(h-1-y), ' ', nil, style)
			}
		}
		for i, p := range waypoints {
			style := pathStyle
			if i == failIdx {
				style = failStyle
			}
			screen.SetContent(int(p.X), int(p.Y), '*', nil, style)
		}
		screen.Show()
	}

	draw()
	for {
		ev := screen.PollEvent()
		switch ev.(type) {
		case *tcell.EventKey, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			draw()
		}
	}
}
