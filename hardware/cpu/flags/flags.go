// This file is part of Gopher80.
//
// Gopher80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher80.  If not, see <https://www.gnu.org/licenses/>.

package flags

import (
	"math/bits"

	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
)

var sz53 [256]registers.Flags
var sz53p [256]registers.Flags

func init() {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		sz53[i] = SignCheck(v) | ZeroCheck(v) | X5Check(v) | X3Check(v)
		sz53p[i] = sz53[i] | Parity(v)
	}
}

// SignCheck returns the Sign flag if bit 7 of the value is set.
func SignCheck(v uint8) registers.Flags {
	return registers.Flags(v) & registers.Sign
}

// ZeroCheck returns the Zero flag if the value is zero.
func ZeroCheck(v uint8) registers.Flags {
	if v == 0 {
		return registers.Zero
	}
	return 0
}

// Parity returns the ParityOverflow flag if the value has an even number of
// bits set.
func Parity(v uint8) registers.Flags {
	if bits.OnesCount8(v)&0x01 == 0 {
		return registers.ParityOverflow
	}
	return 0
}

// X5Check returns the X5 flag if bit 5 of the value is set.
func X5Check(v uint8) registers.Flags {
	return registers.Flags(v) & registers.X5
}

// X3Check returns the X3 flag if bit 3 of the value is set.
func X3Check(v uint8) registers.Flags {
	return registers.Flags(v) & registers.X3
}

// X5Check16 returns the X5 flag if bit 13 of the address is set. In other
// words, bit 5 of the high byte.
func X5Check16(address uint16) registers.Flags {
	return X5Check(uint8(address >> 8))
}

// X3Check16 returns the X3 flag if bit 11 of the address is set. In other
// words, bit 3 of the high byte.
func X3Check16(address uint16) registers.Flags {
	return X3Check(uint8(address >> 8))
}

// Unaffect returns the flags in the mask as they currently are.
func Unaffect(f registers.Flags, mask registers.Flags) registers.Flags {
	return f & mask
}

// SZ53 is the combination of SignCheck, ZeroCheck, X5Check and X3Check.
func SZ53(v uint8) registers.Flags {
	return sz53[v]
}

// SZ53P is the combination of SZ53 and Parity.
func SZ53P(v uint8) registers.Flags {
	return sz53p[v]
}

// CarryCheck returns the Carry flag if c is true.
func CarryCheck(c bool) registers.Flags {
	if c {
		return registers.Carry
	}
	return 0
}

// HalfCarryCheck returns the HalfCarry flag if h is true.
func HalfCarryCheck(h bool) registers.Flags {
	if h {
		return registers.HalfCarry
	}
	return 0
}

// OverflowCheck returns the ParityOverflow flag if v is true.
func OverflowCheck(v bool) registers.Flags {
	if v {
		return registers.ParityOverflow
	}
	return 0
}

// HalfCarry returns the HalfCarry flag if there was a carry (or borrow) from
// bit 3 to bit 4 when operands a and b produced result r. The same test works
// for both addition and subtraction.
func HalfCarry(a uint8, b uint8, r uint8) registers.Flags {
	return registers.Flags(a^b^r) & registers.HalfCarry
}

// OverflowAdd returns the ParityOverflow flag if the addition of a and b,
// producing r, overflowed as a signed operation.
func OverflowAdd(a uint8, b uint8, r uint8) registers.Flags {
	return OverflowCheck((a^r)&(b^r)&0x80 != 0)
}

// OverflowSub returns the ParityOverflow flag if the subtraction of b from a,
// producing r, overflowed as a signed operation.
func OverflowSub(a uint8, b uint8, r uint8) registers.Flags {
	return OverflowCheck((a^b)&(a^r)&0x80 != 0)
}
