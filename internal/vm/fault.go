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

import "fmt"

// Category classifies a Fault for callers that need to react to the kind of
// failure without parsing the human-readable message (spec.md §4.1, §7).
type Category int

const (
	CategoryNullPointer Category = iota
	CategoryOutOfBounds
	CategoryMissizedMmio
	CategoryUnalignedMmio
	CategoryAtomicMmio
	CategoryIllegalInstruction
	// CategoryDividePolicy is reserved for a divide-by-zero or overflow that
	// reaches a trap. RV32IM/RV64IM division never traps in this ISA subset
	// (spec.md §4.1 defines quotient/remainder for both cases), so no path
	// in this package currently produces it; it exists so callers have a
	// stable Category to switch on if a future extension adds a trapping
	// divide mode.
	CategoryDividePolicy
)

// Fault is a bot-fatal CPU error: an illegal memory access, a missized or
// unaligned or atomic MMIO access, or an illegal instruction. The world
// engine kills the offending bot and records Fault.Error() in its event log
// (spec.md §7).
type Fault struct {
	Category Category
	Detail   string // e.g. "null-pointer load", "missized mmio store"
	Addr     uint32
	Size     int
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s on 0x%08x+%d", f.Detail, f.Addr, f.Size)
}

func fault(cat Category, detail string, addr uint32, size int) *Fault {
	return &Fault{Category: cat, Detail: detail, Addr: addr, Size: size}
}
