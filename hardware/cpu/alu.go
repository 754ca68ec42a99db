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

package cpu

import (
	"github.com/jetsetilly/gopher80/hardware/cpu/flags"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
)

func carryIn(r *registers.Registers) uint8 {
	return uint8(r.F & registers.Carry)
}

func add8(r *registers.Registers, a uint8, v uint8, c uint8) uint8 {
	sum := uint16(a) + uint16(v) + uint16(c)
	res := uint8(sum)
	r.F = flags.SZ53(res) | flags.HalfCarry(a, v, res) | flags.OverflowAdd(a, v, res) |
		flags.CarryCheck(sum > 0xff)
	return res
}

func sub8(r *registers.Registers, a uint8, v uint8, c uint8) uint8 {
	diff := int(a) - int(v) - int(c)
	res := uint8(diff)
	r.F = flags.SZ53(res) | registers.Subtract | flags.HalfCarry(a, v, res) |
		flags.OverflowSub(a, v, res) | flags.CarryCheck(diff < 0)
	return res
}

// alu performs the operation on the accumulator and the value.
func alu(r *registers.Registers, op instructions.Operation, v uint8) {
	switch op {
	case instructions.ADD:
		r.A = add8(r, r.A, v, 0)
	case instructions.ADC:
		r.A = add8(r, r.A, v, carryIn(r))
	case instructions.SUB:
		r.A = sub8(r, r.A, v, 0)
	case instructions.SBC:
		r.A = sub8(r, r.A, v, carryIn(r))
	case instructions.AND:
		r.A &= v
		r.F = flags.SZ53P(r.A) | registers.HalfCarry
	case instructions.XOR:
		r.A ^= v
		r.F = flags.SZ53P(r.A)
	case instructions.OR:
		r.A |= v
		r.F = flags.SZ53P(r.A)
	case instructions.CP:
		// X5 and X3 come from the operand and not from the result
		sub8(r, r.A, v, 0)
		r.F = r.F&^(registers.X5|registers.X3) | flags.X5Check(v) | flags.X3Check(v)
	}
}

func inc8(r *registers.Registers, v uint8) uint8 {
	res := v + 1
	r.F = flags.Unaffect(r.F, registers.Carry) | flags.SZ53(res) |
		flags.HalfCarryCheck(v&0x0f == 0x0f) | flags.OverflowCheck(v == 0x7f)
	return res
}

func dec8(r *registers.Registers, v uint8) uint8 {
	res := v - 1
	r.F = flags.Unaffect(r.F, registers.Carry) | flags.SZ53(res) | registers.Subtract |
		flags.HalfCarryCheck(v&0x0f == 0x00) | flags.OverflowCheck(v == 0x80)
	return res
}

// add16 is used by ADD HL,rr. the sign, zero and parity flags are not
// affected.
func add16(r *registers.Registers, a uint16, v uint16) uint16 {
	sum := uint32(a) + uint32(v)
	res := uint16(sum)
	r.WZ = a + 1
	r.F = flags.Unaffect(r.F, registers.Sign|registers.Zero|registers.ParityOverflow) |
		flags.X5Check16(res) | flags.X3Check16(res) |
		flags.HalfCarryCheck((a^v^res)&0x1000 != 0) | flags.CarryCheck(sum > 0xffff)
	return res
}

func adc16(r *registers.Registers, a uint16, v uint16) uint16 {
	sum := uint32(a) + uint32(v) + uint32(carryIn(r))
	res := uint16(sum)
	r.WZ = a + 1
	r.F = flags.SignCheck(uint8(res>>8)) | flags.ZeroCheck(uint8(res>>8)|uint8(res)) |
		flags.X5Check16(res) | flags.X3Check16(res) |
		flags.HalfCarryCheck((a^v^res)&0x1000 != 0) |
		flags.OverflowCheck((a^res)&(v^res)&0x8000 != 0) | flags.CarryCheck(sum > 0xffff)
	return res
}

func sbc16(r *registers.Registers, a uint16, v uint16) uint16 {
	diff := int(a) - int(v) - int(carryIn(r))
	res := uint16(diff)
	r.WZ = a + 1
	r.F = flags.SignCheck(uint8(res>>8)) | flags.ZeroCheck(uint8(res>>8)|uint8(res)) |
		flags.X5Check16(res) | flags.X3Check16(res) | registers.Subtract |
		flags.HalfCarryCheck((a^v^res)&0x1000 != 0) |
		flags.OverflowCheck((a^v)&(a^res)&0x8000 != 0) | flags.CarryCheck(diff < 0)
	return res
}

// rotate performs the rotation or shift and returns the result and the new
// state of the carry flag.
func rotate(rot instructions.Rotation, v uint8, carry bool) (uint8, bool) {
	var c uint8
	if carry {
		c = 1
	}

	switch rot {
	case instructions.RLC:
		return v<<1 | v>>7, v&0x80 == 0x80
	case instructions.RRC:
		return v>>1 | v<<7, v&0x01 == 0x01
	case instructions.RL:
		return v<<1 | c, v&0x80 == 0x80
	case instructions.RR:
		return v>>1 | c<<7, v&0x01 == 0x01
	case instructions.SLA:
		return v << 1, v&0x80 == 0x80
	case instructions.SRA:
		return v>>1 | v&0x80, v&0x01 == 0x01
	case instructions.SLL:
		return v<<1 | 0x01, v&0x80 == 0x80
	case instructions.SRL:
		return v >> 1, v&0x01 == 0x01
	}

	return v, carry
}

// rotateFlags are the flags for the CB and DDCB rotations and shifts.
func rotateFlags(res uint8, carry bool) registers.Flags {
	return flags.SZ53P(res) | flags.CarryCheck(carry)
}

// bitFlags are the flags for the BIT instruction. the X5 and X3 flags are
// supplied by the caller because they come from different places depending on
// the addressing mode.
func bitFlags(r *registers.Registers, n uint8, v uint8, x53 registers.Flags) registers.Flags {
	m := v & (1 << n)
	return flags.SignCheck(m) | flags.ZeroCheck(m) | flags.Parity(m) | registers.HalfCarry |
		x53 | flags.Unaffect(r.F, registers.Carry)
}

// daa adjusts the accumulator for binary coded decimal arithmetic after an
// addition or subtraction.
func daa(r *registers.Registers) {
	a := r.A
	n := r.F.Has(registers.Subtract)
	carry := r.F.Has(registers.Carry)
	half := r.F.Has(registers.HalfCarry)

	var corr uint8
	if half || a&0x0f > 0x09 {
		corr |= 0x06
	}
	if carry || a > 0x99 {
		corr |= 0x60
		carry = true
	}

	if n {
		r.A = a - corr
		half = half && a&0x0f < 0x06
	} else {
		r.A = a + corr
		half = a&0x0f > 0x09
	}

	r.F = flags.SZ53P(r.A) | flags.HalfCarryCheck(half) | flags.CarryCheck(carry) |
		flags.Unaffect(r.F, registers.Subtract)
}

// condition returns true if the condition is met by the flags.
func condition(f registers.Flags, c instructions.Condition) bool {
	switch c {
	case instructions.NZ:
		return !f.Has(registers.Zero)
	case instructions.Z:
		return f.Has(registers.Zero)
	case instructions.NC:
		return !f.Has(registers.Carry)
	case instructions.C:
		return f.Has(registers.Carry)
	case instructions.PO:
		return !f.Has(registers.ParityOverflow)
	case instructions.PE:
		return f.Has(registers.ParityOverflow)
	case instructions.P:
		return !f.Has(registers.Sign)
	case instructions.M:
		return f.Has(registers.Sign)
	}
	return false
}
