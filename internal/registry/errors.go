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

// Package registry implements Core C: the process-level, RCU-protected
// table of running worlds that backs the control surface (spec.md §4.6,
// §6.3).
package registry

import "errors"

// Registry errors (spec.md §7 tier 3): returned directly from the offending
// admin call. Registry state is never left partially updated because every
// mutation is a single atomic-pointer swap of an entirely new snapshot.
var (
	ErrNameConflict      = errors.New("registry: a public world with this name already exists")
	ErrCapacityExhausted = errors.New("registry: world capacity exhausted")
	ErrNotFound          = errors.New("registry: world not found")
	ErrIO                = errors.New("registry: io error")
	ErrCorruptedWorldFile = errors.New("registry: corrupted world file")
)
