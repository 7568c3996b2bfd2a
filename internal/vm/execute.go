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

const (
	opLoad     = 0x03
	opMiscMem  = 0x0f
	opOpImm    = 0x13
	opAuipc    = 0x17
	opOpImm32  = 0x1b
	opStore    = 0x23
	opAmo      = 0x2f
	opOp       = 0x33
	opLui      = 0x37
	opOp32     = 0x3b
	opBranch   = 0x63
	opJalr     = 0x67
	opJal      = 0x6f
	opSystem   = 0x73
)

func (c *Cpu) illegal() *Fault {
	return fault(CategoryIllegalInstruction, "illegal instruction", uint32(c.Pc), 4)
}

// signed reinterprets a register value as a signed integer of the Cpu's
// native width (spec.md §3.2: pc/registers are 32-bit for RV32, 64-bit for
// RV64).
func (c *Cpu) signed(v uint64) int64 {
	if c.ISA == RV32 {
		return int64(int32(v))
	}
	return int64(v)
}

func (c *Cpu) execute(instr uint32, mmio Mmio) *Fault {
	switch opcode(instr) {
	case opLui:
		c.setReg(rd(instr), uint64(uImm(instr)))
		c.Pc = c.mask64(c.Pc + 4)

	case opAuipc:
		c.setReg(rd(instr), c.mask64(uint64(int64(c.Pc)+uImm(instr))))
		c.Pc = c.mask64(c.Pc + 4)

	case opJal:
		target := c.mask64(uint64(int64(c.Pc) + jImm(instr)))
		c.setReg(rd(instr), c.mask64(c.Pc+4))
		c.Pc = target

	case opJalr:
		if funct3(instr) != 0 {
			return c.illegal()
		}
		base := c.Regs[rs1(instr)]
		target := c.mask64(uint64(int64(base)+iImm(instr))) &^ 1
		c.setReg(rd(instr), c.mask64(c.Pc+4))
		c.Pc = target

	case opBranch:
		a, b := c.Regs[rs1(instr)], c.Regs[rs2(instr)]
		var taken bool
		switch funct3(instr) {
		case 0:
			taken = a == b // beq
		case 1:
			taken = a != b // bne
		case 4:
			taken = c.signed(a) < c.signed(b) // blt
		case 5:
			taken = c.signed(a) >= c.signed(b) // bge
		case 6:
			taken = a < b // bltu
		case 7:
			taken = a >= b // bgeu
		default:
			return c.illegal()
		}
		if taken {
			c.Pc = c.mask64(uint64(int64(c.Pc) + bImm(instr)))
		} else {
			c.Pc = c.mask64(c.Pc + 4)
		}

	case opLoad:
		return c.execLoad(instr, mmio)

	case opStore:
		return c.execStore(instr, mmio)

	case opOpImm:
		return c.execOpImm(instr, false)

	case opOpImm32:
		if c.ISA != RV64 {
			return c.illegal()
		}
		return c.execOpImm(instr, true)

	case opOp:
		return c.execOp(instr, false)

	case opOp32:
		if c.ISA != RV64 {
			return c.illegal()
		}
		return c.execOp(instr, true)

	case opMiscMem:
		// fence / fence.i: no cross-bot shared memory exists to order
		// against (spec.md §1 Non-goals), so this is a no-op.
		c.Pc = c.mask64(c.Pc + 4)

	case opSystem:
		switch instr >> 20 {
		case 0x001: // ebreak
			c.Halted = true
		default: // ecall and anything else: no syscalls in this sandbox
			return c.illegal()
		}

	case opAmo:
		if c.ISA != RV64 {
			return c.illegal()
		}
		return c.execAmo(instr, mmio)

	default:
		return c.illegal()
	}
	return nil
}
