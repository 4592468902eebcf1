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

// Package gridpath validates any-angle paths against a 2D uniform
// occupancy grid: given a boolean traversability grid and an ordered
// sequence of continuous waypoints, it decides whether every straight
// segment between consecutive waypoints lies entirely in traversable
// space, honoring a precise corner-touching policy at grid corners and
// edges. It does not plan paths, smooth them, or mutate the grid — only
// a pass/fail verdict with the index of the first offending waypoint or
// segment.
//
// A BitGrid is built once from a flat boolean buffer and is read-only
// afterward; a Validator bound to it may be shared across goroutines
// provided each call to Validate runs to completion before Reset is
// called on the same instance.
package gridpath
