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

// execOpImm implements the OP-IMM and OP-IMM-32 opcodes: addi/slti/sltiu/
// xori/ori/andi/slli/srli/srai, and on RV64 their addiw/slliw/srliw/sraiw
// 32-bit-narrowed counterparts (is32 true).
func (c *Cpu) execOpImm(instr uint32, is32 bool) *Fault {
	f3 := funct3(instr)
	if is32 && f3 != 0 && f3 != 1 && f3 != 5 {
		return c.illegal()
	}

	a := c.Regs[rs1(instr)]
	imm := iImm(instr)
	var result uint64

	switch f3 {
	case 0: // addi / addiw
		if is32 {
			result = signExtend32to64(uint32(int64(uint32(a)) + imm))
		} else {
			result = a + uint64(imm)
		}
	case 1: // slli / slliw
		shamt := shiftAmount(instr, is32, c.ISA)
		if is32 {
			result = signExtend32to64(uint32(a) << shamt)
		} else {
			result = a << shamt
		}
	case 2: // slti
		if c.signed(a) < imm {
			result = 1
		}
	case 3: // sltiu
		if a < c.mask64(uint64(imm)) {
			result = 1
		}
	case 4: // xori
		result = a ^ uint64(imm)
	case 5: // srli/srai or srliw/sraiw
		shamt := shiftAmount(instr, is32, c.ISA)
		arith := funct7(instr)&0x20 != 0
		if is32 {
			if arith {
				result = signExtend32to64(uint32(int32(uint32(a)) >> shamt))
			} else {
				result = signExtend32to64(uint32(a) >> shamt)
			}
		} else if arith {
			result = uint64(c.signed(a) >> shamt)
		} else {
			result = a >> shamt
		}
	case 6: // ori
		result = a | uint64(imm)
	case 7: // andi
		result = a & uint64(imm)
	}

	c.setReg(rd(instr), result)
	c.Pc = c.mask64(c.Pc + 4)
	return nil
}

// execOp implements the OP and OP-32 opcodes: the base integer register-
// register ops, plus the M extension (funct7 == 0x01) and on RV64 their *w
// 32-bit-narrowed counterparts (is32 true).
func (c *Cpu) execOp(instr uint32, is32 bool) *Fault {
	f3, f7 := funct3(instr), funct7(instr)
	a, b := c.Regs[rs1(instr)], c.Regs[rs2(instr)]

	if f7 == 0x01 {
		result := c.execMulDiv(f3, a, b, is32)
		c.setReg(rd(instr), result)
		c.Pc = c.mask64(c.Pc + 4)
		return nil
	}

	if f7 != 0x00 && f7 != 0x20 {
		return c.illegal()
	}
	arith := f7 == 0x20
	if arith && f3 != 0 && f3 != 5 {
		return c.illegal()
	}

	var result uint64
	switch f3 {
	case 0: // add/sub or addw/subw
		if is32 {
			if arith {
				result = signExtend32to64(uint32(a) - uint32(b))
			} else {
				result = signExtend32to64(uint32(a) + uint32(b))
			}
		} else if arith {
			result = a - b
		} else {
			result = a + b
		}
	case 1: // sll / sllw
		if is32 {
			result = signExtend32to64(uint32(a) << uint(b&0x1f))
		} else {
			result = a << c.regShift(b)
		}
	case 2: // slt
		if is32 {
			return c.illegal()
		}
		if c.signed(a) < c.signed(b) {
			result = 1
		}
	case 3: // sltu
		if is32 {
			return c.illegal()
		}
		if a < b {
			result = 1
		}
	case 4: // xor
		if is32 {
			return c.illegal()
		}
		result = a ^ b
	case 5: // srl/sra or srlw/sraw
		if is32 {
			shamt := uint(b & 0x1f)
			if arith {
				result = signExtend32to64(uint32(int32(uint32(a)) >> shamt))
			} else {
				result = signExtend32to64(uint32(a) >> shamt)
			}
		} else if arith {
			result = uint64(c.signed(a) >> c.regShift(b))
		} else {
			result = a >> c.regShift(b)
		}
	case 6: // or
		if is32 {
			return c.illegal()
		}
		result = a | b
	case 7: // and
		if is32 {
			return c.illegal()
		}
		result = a & b
	}

	c.setReg(rd(instr), result)
	c.Pc = c.mask64(c.Pc + 4)
	return nil
}

// regShift returns the shift amount taken from a register operand: 6 bits
// wide on RV64 (shifting the full 64-bit register), 5 bits on RV32.
func (c *Cpu) regShift(b uint64) uint {
	if c.ISA == RV64 {
		return uint(b & 0x3f)
	}
	return uint(b & 0x1f)
}

// execMulDiv implements the M extension: mul/mulh/mulhsu/mulhu/div/divu/rem/
// remu, and on RV64 their *w 32-bit-narrowed counterparts. Division and
// remainder by zero, and remainder's override of the conventional
// "remainder equals dividend" rule, are documented in DESIGN.md (grounded on
// the op-rem/op-divuw/op-remuw fixtures, which this codebase's M extension
// matches exactly: any division or remainder by zero yields all-ones,
// regardless of dividend).
func (c *Cpu) execMulDiv(f3 uint32, a, b uint64, is32 bool) uint64 {
	if is32 {
		a32, b32 := int32(uint32(a)), int32(uint32(b))
		ua32, ub32 := uint32(a), uint32(b)
		switch f3 {
		case 0: // mulw
			return signExtend32to64(uint32(int64(a32) * int64(b32)))
		case 4: // divw
			if b32 == 0 {
				return signExtend32to64(0xffffffff)
			}
			if a32 == int32(int32Min) && b32 == -1 {
				return signExtend32to64(uint32(a32))
			}
			return signExtend32to64(uint32(a32 / b32))
		case 5: // divuw
			if ub32 == 0 {
				return signExtend32to64(0xffffffff)
			}
			return signExtend32to64(ua32 / ub32)
		case 6: // remw
			if b32 == 0 {
				return signExtend32to64(0xffffffff)
			}
			if a32 == int32(int32Min) && b32 == -1 {
				return 0
			}
			return signExtend32to64(uint32(a32 % b32))
		case 7: // remuw
			if ub32 == 0 {
				return signExtend32to64(0xffffffff)
			}
			return signExtend32to64(ua32 % ub32)
		}
		return 0
	}

	a64, b64 := c.signed(a), c.signed(b)
	switch f3 {
	case 0: // mul
		return c.mask64(a * b)
	case 1: // mulh
		return c.mask64(uint64(mulh(a64, b64)))
	case 2: // mulhsu
		return c.mask64(uint64(mulhsu(a64, b)))
	case 3: // mulhu
		return c.mask64(mulhu(a, b))
	case 4: // div
		if b64 == 0 {
			return c.mask64(^uint64(0))
		}
		if a64 == minIntForISA(c.ISA) && b64 == -1 {
			return c.mask64(uint64(a64))
		}
		return c.mask64(uint64(a64 / b64))
	case 5: // divu
		if b == 0 {
			return c.mask64(^uint64(0))
		}
		return c.mask64(a / b)
	case 6: // rem
		if b64 == 0 {
			return c.mask64(^uint64(0))
		}
		if a64 == minIntForISA(c.ISA) && b64 == -1 {
			return 0
		}
		return c.mask64(uint64(a64 % b64))
	case 7: // remu
		if b == 0 {
			return c.mask64(^uint64(0))
		}
		return c.mask64(a % b)
	}
	return 0
}
