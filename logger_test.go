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

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatalf("Logger() returned nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("default logger is enabled at error level, want silent")
	}
	Logger().Info("this should be discarded")
}

func TestSetLoggerRoutesRecords(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("grid bound", "width", 4, "height", 4)

	if buf.Len() == 0 {
		t.Errorf("expected SetLogger's handler to receive the log record")
	}
}
