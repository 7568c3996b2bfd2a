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

// Field extraction for the standard RISC-V instruction formats (R/I/S/B/U/J).
// These are pure bit manipulation, grounded directly in the RV32I/RV64I base
// ISA encoding; no pack library decodes this instruction set.

func opcode(instr uint32) uint32 { return instr & 0x7f }
func rd(instr uint32) uint32     { return (instr >> 7) & 0x1f }
func funct3(instr uint32) uint32 { return (instr >> 12) & 0x7 }
func rs1(instr uint32) uint32    { return (instr >> 15) & 0x1f }
func rs2(instr uint32) uint32    { return (instr >> 20) & 0x1f }
func funct7(instr uint32) uint32 { return (instr >> 25) & 0x7f }
func funct5(instr uint32) uint32 { return (instr >> 27) & 0x1f }

func signExtend(v uint32, bits uint) int64 {
	shift := 32 - bits
	return int64(int32(v<<shift)) >> shift
}

func iImm(instr uint32) int64 {
	return signExtend(instr>>20, 12)
}

func sImm(instr uint32) int64 {
	v := ((instr >> 25) << 5) | ((instr >> 7) & 0x1f)
	return signExtend(v, 12)
}

func bImm(instr uint32) int64 {
	v := (((instr >> 31) & 1) << 12) |
		(((instr >> 7) & 1) << 11) |
		(((instr >> 25) & 0x3f) << 5) |
		(((instr >> 8) & 0xf) << 1)
	return signExtend(v, 13)
}

func uImm(instr uint32) int64 {
	return int64(int32(instr & 0xfffff000))
}

func jImm(instr uint32) int64 {
	v := (((instr >> 31) & 1) << 20) |
		(((instr >> 12) & 0xff) << 12) |
		(((instr >> 20) & 1) << 11) |
		(((instr >> 21) & 0x3ff) << 1)
	return signExtend(v, 21)
}
