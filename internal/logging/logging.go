// Copyright 2026 The Kartoffels Authors
// This file is part of Kartoffels.
//
// Kartoffels is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kartoffels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kartoffels. If not, see <http://www.gnu.org/licenses/>.

// Package logging wires this repository's structured logger. Every other
// package logs through the shared Logger using the same call shape the
// teacher repo uses for its own log package (Info()/Warning()/Err() chained
// with typed field setters and a terminal Log(msg)).
package logging

import (
	"io"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the type every package logs through.
type Logger = logiface.Logger[*stumpy.Event]

// New builds a Logger writing newline-delimited JSON to w.
func New(w io.Writer) *Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(logiface.LevelInformational),
	)
}

// Root is the process-wide default logger, writing to stderr. cmd/kartoffelsd
// may replace it at startup by constructing a new Logger with New and storing
// it wherever dependencies are wired; packages under internal/ take a
// *Logger explicitly rather than reaching for a global where practical.
var Root = New(os.Stderr)
