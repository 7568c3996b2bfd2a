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

// memLoad implements the load half of the memory rules in spec.md §4.1:
// MMIO first (addr >= MmioBase), then RAM, then the null guard, else
// out-of-bounds. atomic indicates an lr/amo access, which is rejected on
// MMIO regardless of size/alignment.
func (c *Cpu) memLoad(mmio Mmio, addr uint32, size int, atomic bool) (uint64, *Fault) {
	if addr >= MmioBase {
		if atomic {
			return 0, fault(CategoryAtomicMmio, "atomic mmio load", addr, size)
		}
		if mmio == nil {
			return 0, fault(CategoryOutOfBounds, "out-of-bounds mmio load", addr, size)
		}
		return c.memLoadMmio(mmio, addr, size)
	}

	if addr >= RamBase {
		return c.memLoadRam(addr, size)
	}

	if addr == 0 {
		return 0, fault(CategoryNullPointer, "null-pointer load", addr, size)
	}

	return 0, fault(CategoryOutOfBounds, "out-of-bounds load", addr, size)
}

func (c *Cpu) memLoadMmio(mmio Mmio, addr uint32, size int) (uint64, *Fault) {
	if size != 4 {
		return 0, fault(CategoryMissizedMmio, "missized mmio load", addr, size)
	}
	if addr%4 != 0 {
		return 0, fault(CategoryUnalignedMmio, "unaligned mmio load", addr, size)
	}
	rel := addr - MmioBase
	val, err := mmio.Load(rel)
	if err != nil {
		return 0, fault(CategoryOutOfBounds, "out-of-bounds mmio load", addr, size)
	}
	// Returned zero-extended; the LOAD instruction itself decides whether to
	// sign-extend (lw) or not (lwu), exactly as it does for a RAM word.
	return uint64(val), nil
}

func (c *Cpu) memLoadRam(addr uint32, size int) (uint64, *Fault) {
	rel := addr - RamBase
	if uint64(rel)+uint64(size) > uint64(len(c.Ram)) {
		return 0, fault(CategoryOutOfBounds, "out-of-bounds ram load", addr, size)
	}
	var val uint64
	for i := 0; i < size; i++ {
		val |= uint64(c.Ram[int(rel)+i]) << (8 * i)
	}
	return val, nil
}

// memStore implements the store half of spec.md §4.1's memory rules.
func (c *Cpu) memStore(mmio Mmio, addr uint32, val uint64, size int, atomic bool) *Fault {
	if addr >= MmioBase {
		if atomic {
			return fault(CategoryAtomicMmio, "atomic mmio store", addr, size)
		}
		if mmio == nil {
			return fault(CategoryOutOfBounds, "out-of-bounds mmio store", addr, size)
		}
		return c.memStoreMmio(mmio, addr, val, size)
	}

	if addr >= RamBase {
		return c.memStoreRam(addr, val, size)
	}

	if addr == 0 {
		return fault(CategoryNullPointer, "null-pointer store", addr, size)
	}

	return fault(CategoryOutOfBounds, "out-of-bounds store", addr, size)
}

func (c *Cpu) memStoreMmio(mmio Mmio, addr uint32, val uint64, size int) *Fault {
	if size != 4 {
		return fault(CategoryMissizedMmio, "missized mmio store", addr, size)
	}
	if addr%4 != 0 {
		return fault(CategoryUnalignedMmio, "unaligned mmio store", addr, size)
	}
	rel := addr - MmioBase
	if err := mmio.Store(rel, uint32(val)); err != nil {
		return fault(CategoryOutOfBounds, "out-of-bounds mmio store", addr, size)
	}
	// Any store clears a reservation on that address (spec.md §4.1, LR/SC).
	c.clearReservationIfMatches(addr)
	return nil
}

func (c *Cpu) memStoreRam(addr uint32, val uint64, size int) *Fault {
	rel := addr - RamBase
	if uint64(rel)+uint64(size) > uint64(len(c.Ram)) {
		return fault(CategoryOutOfBounds, "out-of-bounds ram store", addr, size)
	}
	for i := 0; i < size; i++ {
		c.Ram[int(rel)+i] = byte(val >> (8 * i))
	}
	c.clearReservationIfMatches(addr)
	return nil
}

func (c *Cpu) clearReservationIfMatches(addr uint32) {
	if c.reservationSet && c.reservationAddr == addr {
		c.reservationSet = false
	}
}
