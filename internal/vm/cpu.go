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

// Package vm implements Core A: a deterministic RV32IM / RV64IMA instruction
// stepper against a fixed memory map (RAM plus a word-only MMIO window), the
// sandbox a single bot's firmware runs inside. The stepping shape (decode one
// instruction, execute it against explicitly bounds-checked memory, surface a
// typed Fault rather than panicking) is grounded on
// tetratelabs-wazero/internal/engine/interpreter/interpreter.go's one-opcode
// loop; the exact RISC-V semantics — memory fault ordering, atomic widths,
// division-by-zero policy — follow original_source's
// kartoffels-cpu/src/mem.rs and the kartoffels-cpu-tests/kartoffels-vm-tests
// fixtures.
package vm

import "encoding/binary"

// ISA selects the width of the integer register file and which *w-suffixed
// and A-extension opcodes decode successfully (spec.md §1: RV32IM / RV64IMA).
type ISA int

const (
	RV32 ISA = 32
	RV64 ISA = 64
)

// MmioBase is the first word address of the MMIO region. It is fixed at
// 0x08000000 to match the bot-firmware conformance fixtures in
// kartoffels-cpu-tests (op-sh-mmio, op-sw-mmio-unaligned).
const MmioBase uint32 = 0x08000000

// RamBase is the first address of RAM; address 0 is always a null-pointer
// fault (spec.md §3.3), so RAM cannot start at 0.
const RamBase uint32 = 0x00000400

// DefaultRamSize is the per-bot RAM size used by the world engine
// (spec.md §3.2).
const DefaultRamSize = 128 * 1024

// Cpu is one bot's virtual processor: an integer register file, a program
// counter, a byte-addressable RAM, and the reservation set by lr.{w,d} for
// RV64A load-reserved/store-conditional.
type Cpu struct {
	ISA  ISA
	Regs [32]uint64
	Pc   uint64
	Ram  []byte

	// reservation tracks the address set by the most recent lr.{w,d}. Any
	// store to that address (by this Cpu; cross-bot shared memory is a
	// Non-goal per spec.md §1) or a completed sc.* clears it.
	reservationSet  bool
	reservationAddr uint32

	// StepsRemaining is the scheduler-granted instruction budget
	// (spec.md §3.2); it is not touched by Step itself — the caller
	// decrements it and stops calling Step once it reaches zero, matching
	// the world's per-tick bot budget (spec.md §4.3).
	StepsRemaining uint64

	// Halted is set once ebreak retires; Step returns immediately without
	// advancing Pc once Halted is true.
	Halted bool
}

// New constructs a Cpu with a zeroed register file and RAM of ramSize bytes,
// with Pc initialized to RamBase (firmware is loaded at RamBase and begins
// executing from its first byte).
func New(isa ISA, ramSize int) *Cpu {
	return &Cpu{
		ISA:  isa,
		Ram:  make([]byte, ramSize),
		Pc:   uint64(RamBase),
		Regs: [32]uint64{},
	}
}

// LoadProgram copies a flat firmware image into RAM starting at offset 0
// (i.e. address RamBase) and resets Pc to RamBase.
func (c *Cpu) LoadProgram(image []byte) {
	n := copy(c.Ram, image)
	for i := n; i < len(c.Ram); i++ {
		c.Ram[i] = 0
	}
	c.Pc = uint64(RamBase)
}

// mask64 clears bits above the ISA width so a RV32 Cpu's registers always
// read back as zero-extended 32-bit values, matching spec.md §3.2 ("pc is
// 32-bit for RV32, 64-bit for RV64").
func (c *Cpu) mask64(v uint64) uint64 {
	if c.ISA == RV32 {
		return v & 0xffffffff
	}
	return v
}

// setReg writes v to register rd, honoring the hard-wired-zero invariant for
// x0 (spec.md §3.2).
func (c *Cpu) setReg(rd uint32, v uint64) {
	if rd == 0 {
		return
	}
	c.Regs[rd] = c.mask64(v)
}

// Step decodes and retires exactly one instruction. It returns a non-nil
// Fault if the instruction could not be completed; the Cpu's state at that
// point is left as of just before the faulting instruction (Pc unchanged),
// as execution mid-instruction never has partially-applied side effects
// beyond the load/store that faulted.
func (c *Cpu) Step(mmio Mmio) *Fault {
	if c.Halted {
		return nil
	}
	if c.Regs[0] != 0 {
		panic("vm: invariant violated: regs[0] != 0")
	}

	raw, f := c.fetch()
	if f != nil {
		return f
	}

	return c.execute(raw, mmio)
}

// Run steps the Cpu until StepsRemaining reaches zero, a Fault occurs, or
// ebreak halts it, decrementing StepsRemaining once per retired instruction.
// It returns the Fault that stopped it, or nil if the budget was exhausted
// or the Cpu halted cleanly.
func (c *Cpu) Run(mmio Mmio) *Fault {
	for c.StepsRemaining > 0 && !c.Halted {
		c.StepsRemaining--
		if f := c.Step(mmio); f != nil {
			return f
		}
	}
	return nil
}

func (c *Cpu) fetch() (uint32, *Fault) {
	raw, f := c.loadRamWord(uint32(c.Pc))
	return raw, f
}

// loadRamWord reads a 4-byte little-endian instruction word directly out of
// RAM, bypassing the general mem_load fault ordering: firmware is always
// executable RAM (spec.md §3.2 invariant: "pc must lie in executable RAM
// range"); fetches outside RAM are out-of-bounds faults like any other RAM
// access.
func (c *Cpu) loadRamWord(addr uint32) (uint32, *Fault) {
	if addr == 0 {
		return 0, fault(CategoryNullPointer, "null-pointer load", addr, 4)
	}
	if addr < RamBase {
		return 0, fault(CategoryOutOfBounds, "out-of-bounds load", addr, 4)
	}
	rel := addr - RamBase
	if uint64(rel)+4 > uint64(len(c.Ram)) {
		return 0, fault(CategoryOutOfBounds, "out-of-bounds ram load", addr, 4)
	}
	return binary.LittleEndian.Uint32(c.Ram[rel : rel+4]), nil
}
