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

import "sync/atomic"

// globalValidator backs an optional process-wide validator singleton, for
// host bindings that would rather not thread a *Validator through a
// foreign scripting runtime. Direct use of NewValidator is preferred; this
// exists for that binding-ergonomics case only.
var globalValidator atomic.Pointer[Validator]

// Initialize binds the process-wide validator to grid. It fails with
// ErrGridAlreadyBound if a grid is already bound — callers must call
// ResetGlobal first.
func Initialize(grid *BitGrid) error {
	if globalValidator.Load() != nil {
		return ErrGridAlreadyBound
	}
	globalValidator.Store(NewValidator(grid))
	return nil
}

// ResetGlobal clears the process-wide validator so Initialize may bind a
// new grid.
func ResetGlobal() {
	globalValidator.Store(nil)
}

// ValidateGlobal runs Validate against the process-wide validator.
func ValidateGlobal(path []Point) (int, error) {
	v := globalValidator.Load()
	if v == nil {
		return 0, ErrGridNotSet
	}
	return v.Validate(path)
}
