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

// Minimal instruction encoders for the conformance-style tests below. These
// mirror the RV32I/RV64I/M/A encodings decoded in decode.go and execute.go;
// no assembler exists in the dependency pack, so tests build raw machine
// words directly, the same way kartoffels-vm-tests builds its fixtures.

func encR(opcode, funct3, funct7, rd, rs1, rs2 uint32) uint32 {
	return opcode | rd<<7 | funct3<<12 | rs1<<15 | rs2<<20 | funct7<<25
}

func encI(opcode, funct3, rd, rs1 uint32, imm int64) uint32 {
	return opcode | rd<<7 | funct3<<12 | rs1<<15 | (uint32(imm)&0xfff)<<20
}

func encS(opcode, funct3, rs1, rs2 uint32, imm int64) uint32 {
	u := uint32(imm)
	return opcode | (u&0x1f)<<7 | funct3<<12 | rs1<<15 | rs2<<20 | ((u>>5)&0x7f)<<25
}

func encB(opcode, funct3, rs1, rs2 uint32, imm int64) uint32 {
	u := uint32(imm)
	return opcode |
		((u>>11)&1)<<7 | ((u>>1)&0xf)<<8 |
		funct3<<12 | rs1<<15 | rs2<<20 |
		((u>>5)&0x3f)<<25 | ((u>>12)&1)<<31
}

func encU(opcode, rd uint32, imm int64) uint32 {
	return opcode | rd<<7 | (uint32(imm) & 0xfffff000)
}

func encJ(opcode, rd uint32, imm int64) uint32 {
	u := uint32(imm)
	return opcode | rd<<7 |
		((u>>12)&0xff)<<12 | ((u>>11)&1)<<20 |
		((u>>1)&0x3ff)<<21 | ((u>>20)&1)<<31
}

func encAmo(funct5, funct3, rd, rs1, rs2 uint32) uint32 {
	return opAmo | rd<<7 | funct3<<12 | rs1<<15 | rs2<<20 | funct5<<27
}

// mnemonic helpers, opcode/funct3/funct7 per decode.go / execute.go.

func iAddi(rd, rs1 uint32, imm int64) uint32  { return encI(opOpImm, 0, rd, rs1, imm) }
func iAdd(rd, rs1, rs2 uint32) uint32         { return encR(opOp, 0, 0, rd, rs1, rs2) }
func iJal(rd uint32, imm int64) uint32        { return encJ(opJal, rd, imm) }
func iOri(rd, rs1 uint32, imm int64) uint32   { return encI(opOpImm, 6, rd, rs1, imm) }
func iJalr(rd, rs1 uint32, imm int64) uint32  { return encI(opJalr, 0, rd, rs1, imm) }
func iLui(rd uint32, imm int64) uint32        { return encU(opLui, rd, imm) }
func iLb(rd, rs1 uint32, imm int64) uint32    { return encI(opLoad, 0, rd, rs1, imm) }
func iLh(rd, rs1 uint32, imm int64) uint32    { return encI(opLoad, 1, rd, rs1, imm) }
func iLw(rd, rs1 uint32, imm int64) uint32    { return encI(opLoad, 2, rd, rs1, imm) }
func iLd(rd, rs1 uint32, imm int64) uint32    { return encI(opLoad, 3, rd, rs1, imm) }
func iLwu(rd, rs1 uint32, imm int64) uint32   { return encI(opLoad, 6, rd, rs1, imm) }
func iSb(rs1, rs2 uint32, imm int64) uint32   { return encS(opStore, 0, rs1, rs2, imm) }
func iSh(rs1, rs2 uint32, imm int64) uint32   { return encS(opStore, 1, rs1, rs2, imm) }
func iSw(rs1, rs2 uint32, imm int64) uint32   { return encS(opStore, 2, rs1, rs2, imm) }
func iSd(rs1, rs2 uint32, imm int64) uint32   { return encS(opStore, 3, rs1, rs2, imm) }
func iRem(rd, rs1, rs2 uint32) uint32         { return encR(opOp, 6, 0x01, rd, rs1, rs2) }
func iRemw(rd, rs1, rs2 uint32) uint32        { return encR(opOp32, 6, 0x01, rd, rs1, rs2) }
func iRemuw(rd, rs1, rs2 uint32) uint32       { return encR(opOp32, 7, 0x01, rd, rs1, rs2) }
func iDivuw(rd, rs1, rs2 uint32) uint32       { return encR(opOp32, 5, 0x01, rd, rs1, rs2) }
func iMulw(rd, rs1, rs2 uint32) uint32        { return encR(opOp32, 0, 0x01, rd, rs1, rs2) }
func iLrD(rd, rs1 uint32) uint32              { return encAmo(0b00010, 3, rd, rs1, 0) }
func iScD(rd, rs1, rs2 uint32) uint32         { return encAmo(0b00011, 3, rd, rs1, rs2) }
func iAmoMaxD(rd, rs1, rs2 uint32) uint32     { return encAmo(0b10100, 3, rd, rs1, rs2) }
func iEbreak() uint32                         { return encI(opSystem, 0, 0, 0, 0x001) }

func asm(words ...uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		out[i*4+0] = byte(w)
		out[i*4+1] = byte(w >> 8)
		out[i*4+2] = byte(w >> 16)
		out[i*4+3] = byte(w >> 24)
	}
	return out
}
