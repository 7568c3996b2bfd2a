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

import "math/bits"

const (
	int32Min int64 = -0x80000000
	int64Min int64 = -0x8000000000000000
)

func minIntForISA(isa ISA) int64 {
	if isa == RV32 {
		return int32Min
	}
	return int64Min
}

// signExtend32to64 sign-extends the low 32 bits of v (as a 32-bit two's
// complement value) to a full 64-bit value. Used throughout the *w
// instruction family, which always sign-extends its 32-bit result
// (spec.md §4.1).
func signExtend32to64(v uint32) uint64 {
	return uint64(int64(int32(v)))
}

// maskSize truncates v to the low size*8 bits (size is 4 or 8).
func maskSize(v uint64, size int) uint64 {
	if size == 4 {
		return v & 0xffffffff
	}
	return v
}

// signExtendSize sign-extends the low size*8 bits of v to 64 bits.
func signExtendSize(v uint64, size int) int64 {
	if size == 4 {
		return int64(int32(uint32(v)))
	}
	return int64(v)
}

func shiftAmount(instr uint32, is32 bool, isa ISA) uint {
	if is32 {
		return uint((instr >> 20) & 0x1f)
	}
	if isa == RV64 {
		return uint((instr >> 20) & 0x3f)
	}
	return uint((instr >> 20) & 0x1f)
}

// mulh returns the high 64 bits of the signed 128-bit product a*b.
func mulh(a, b int64) int64 {
	ua, ub := uint64(a), uint64(b)
	hi, _ := bits.Mul64(ua, ub)
	if a < 0 {
		hi -= ub
	}
	if b < 0 {
		hi -= ua
	}
	return int64(hi)
}

// mulhsu returns the high 64 bits of the signed*unsigned 128-bit product.
func mulhsu(a int64, ub uint64) int64 {
	ua := uint64(a)
	hi, _ := bits.Mul64(ua, ub)
	if a < 0 {
		hi -= ub
	}
	return int64(hi)
}

// mulhu returns the high 64 bits of the unsigned 128-bit product a*b.
func mulhu(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}
