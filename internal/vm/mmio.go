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

package vm

import "errors"

// ErrMmioOutOfBounds is returned by an Mmio implementation when offset does
// not map to any register window it owns.
var ErrMmioOutOfBounds = errors.New("mmio: out of bounds")

// Mmio is the capability a Cpu is given for the duration of a single Step (or
// Run) call. The world composes one per bot per tick by layering peripheral
// adapters over disjoint offset windows (spec.md §4.2); unit tests can inject
// any stub implementing this two-method interface.
type Mmio interface {
	Load(offset uint32) (uint32, error)
	Store(offset uint32, value uint32) error
}
