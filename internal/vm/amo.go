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
	amoLr      = 0b00010
	amoSc      = 0b00011
	amoSwap    = 0b00001
	amoAdd     = 0b00000
	amoXor     = 0b00100
	amoAnd     = 0b01100
	amoOr      = 0b01000
	amoMin     = 0b10000
	amoMax     = 0b10100
	amoMinu    = 0b11000
	amoMaxu    = 0b11100
)

// execAmo implements the RV64A atomics: lr.{w,d}, sc.{w,d}, and the
// amo*.{w,d} read-modify-write family (spec.md §4.1). Only decoded on RV64
// (gated by the caller); the A extension is word- or doubleword-granular,
// never sub-word.
func (c *Cpu) execAmo(instr uint32, mmio Mmio) *Fault {
	var size int
	switch funct3(instr) {
	case 2:
		size = 4
	case 3:
		size = 8
	default:
		return c.illegal()
	}

	addr := uint32(c.Regs[rs1(instr)])
	f5 := funct5(instr)

	switch f5 {
	case amoLr:
		if rs2(instr) != 0 {
			return c.illegal()
		}
		val, f := c.memLoad(mmio, addr, size, true)
		if f != nil {
			return f
		}
		c.reservationSet = true
		c.reservationAddr = addr
		c.setReg(rd(instr), uint64(signExtendSize(val, size)))
		c.Pc = c.mask64(c.Pc + 4)
		return nil

	case amoSc:
		var result uint64
		if c.reservationSet && c.reservationAddr == addr {
			if f := c.memStore(mmio, addr, c.Regs[rs2(instr)], size, true); f != nil {
				return f
			}
			c.reservationSet = false
		} else {
			result = 1
		}
		c.setReg(rd(instr), result)
		c.Pc = c.mask64(c.Pc + 4)
		return nil
	}

	old, f := c.memLoad(mmio, addr, size, true)
	if f != nil {
		return f
	}
	oldSigned := signExtendSize(old, size)
	operand := c.Regs[rs2(instr)]

	var newVal uint64
	switch f5 {
	case amoSwap:
		newVal = operand
	case amoAdd:
		newVal = maskSize(maskSize(old, size)+maskSize(operand, size), size)
	case amoXor:
		newVal = old ^ operand
	case amoAnd:
		newVal = old & operand
	case amoOr:
		newVal = old | operand
	case amoMin:
		if signExtendSize(operand, size) < oldSigned {
			newVal = operand
		} else {
			newVal = old
		}
	case amoMax:
		if signExtendSize(operand, size) > oldSigned {
			newVal = operand
		} else {
			newVal = old
		}
	case amoMinu:
		if maskSize(operand, size) < maskSize(old, size) {
			newVal = operand
		} else {
			newVal = old
		}
	case amoMaxu:
		if maskSize(operand, size) > maskSize(old, size) {
			newVal = operand
		} else {
			newVal = old
		}
	default:
		return c.illegal()
	}

	if f := c.memStore(mmio, addr, newVal, size, true); f != nil {
		return f
	}
	c.setReg(rd(instr), uint64(oldSigned))
	c.Pc = c.mask64(c.Pc + 4)
	return nil
}
