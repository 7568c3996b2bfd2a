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

// execLoad implements lb/lh/lw/ld/lbu/lhu/lwu (spec.md §4.1). ld and lwu only
// decode on RV64.
func (c *Cpu) execLoad(instr uint32, mmio Mmio) *Fault {
	addr := uint32(c.mask64(uint64(int64(c.Regs[rs1(instr)]) + iImm(instr))))

	var size int
	signed := false
	switch funct3(instr) {
	case 0: // lb
		size, signed = 1, true
	case 1: // lh
		size, signed = 2, true
	case 2: // lw
		size, signed = 4, true
	case 3: // ld
		if c.ISA != RV64 {
			return c.illegal()
		}
		size = 8
	case 4: // lbu
		size = 1
	case 5: // lhu
		size = 2
	case 6: // lwu
		if c.ISA != RV64 {
			return c.illegal()
		}
		size = 4
	default:
		return c.illegal()
	}

	val, f := c.memLoad(mmio, addr, size, false)
	if f != nil {
		return f
	}
	if signed && size < 8 {
		val = uint64(signExtend(uint32(val), uint(size*8)))
	}
	c.setReg(rd(instr), val)
	c.Pc = c.mask64(c.Pc + 4)
	return nil
}

// execStore implements sb/sh/sw/sd. sd only decodes on RV64.
func (c *Cpu) execStore(instr uint32, mmio Mmio) *Fault {
	addr := uint32(c.mask64(uint64(int64(c.Regs[rs1(instr)]) + sImm(instr))))

	var size int
	switch funct3(instr) {
	case 0:
		size = 1
	case 1:
		size = 2
	case 2:
		size = 4
	case 3:
		if c.ISA != RV64 {
			return c.illegal()
		}
		size = 8
	default:
		return c.illegal()
	}

	if f := c.memStore(mmio, addr, c.Regs[rs2(instr)], size, false); f != nil {
		return f
	}
	c.Pc = c.mask64(c.Pc + 4)
	return nil
}
