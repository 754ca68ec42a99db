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
	"github.com/jetsetilly/gopher80/hardware/cpu/addressing"
	"github.com/jetsetilly/gopher80/hardware/cpu/flags"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
)

// interrupt modes as selected by the y field of the IM instructions.
var interruptModes = [8]uint8{0, 0, 1, 2, 0, 0, 1, 2}

// edTable builds the table of instructions that follow the ED prefix. opcodes
// without a documented or undocumented meaning behave as an eight cycle NOP.
func edTable() [256]handler {
	var t [256]handler

	for i := range t {
		f := instructions.Decode(uint8(i))

		switch {
		case f.X == 1:
			t[i] = edX1(f)
		case f.X == 2 && f.Y >= 4 && f.Z <= 3:
			t[i] = blockInstruction(f.Y, f.Z)
		default:
			t[i] = edNop
		}
	}

	return t
}

func edX1(f instructions.Fields) handler {
	switch f.Z {
	case 0:
		return inRegC(f.Y)
	case 1:
		return outCReg(f.Y)
	case 2:
		if f.Q == 0 {
			return sbcHLPair(f.P)
		}
		return adcHLPair(f.P)
	case 3:
		if f.Q == 0 {
			return ldAbsPair(f.P)
		}
		return ldPairAbs(f.P)
	case 4:
		return neg
	case 5:
		return retn
	case 6:
		return im(interruptModes[f.Y])
	case 7:
		switch f.Y {
		case 0:
			return ldIA
		case 1:
			return ldRA
		case 2:
			return ldAI
		case 3:
			return ldAR
		case 4:
			return rrd
		case 5:
			return rld
		}
	}
	return edNop
}

func edNop(_ *registers.Registers, _ *bus, _ int8) int {
	return 8
}

// IN r,(C). the y field value of 6 affects the flags only.
func inRegC(y uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		v := b.in(r.BC())
		r.WZ = r.BC() + 1
		r.F = flags.Unaffect(r.F, registers.Carry) | flags.SZ53P(v)
		r.Set8(registers.Target(y), v)
		return 12
	}
}

// OUT (C),r. the y field value of 6 outputs zero.
func outCReg(y uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		b.out(r.BC(), r.Get8(registers.Target(y)))
		r.WZ = r.BC() + 1
		return 12
	}
}

func sbcHLPair(p uint8) handler {
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.SetHL(sbc16(r, r.HL(), getPair(r, p)))
		return 15
	}
}

func adcHLPair(p uint8) handler {
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.SetHL(adc16(r, r.HL(), getPair(r, p)))
		return 15
	}
}

// LD (nn),rr
func ldAbsPair(p uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		a := b.fetch16(r)
		b.write16(a, getPair(r, p))
		r.WZ = a + 1
		return 20
	}
}

// LD rr,(nn)
func ldPairAbs(p uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		a := b.fetch16(r)
		setPair(r, p, b.read16(a))
		r.WZ = a + 1
		return 20
	}
}

func neg(r *registers.Registers, _ *bus, _ int8) int {
	r.A = sub8(r, 0, r.A, 0)
	return 8
}

// RETN and RETI. both restore IFF1 from IFF2.
func retn(r *registers.Registers, b *bus, _ int8) int {
	r.PC = b.pop(r)
	r.WZ = r.PC
	r.IFF1 = r.IFF2
	return 14
}

func im(mode uint8) handler {
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.IM = mode
		return 8
	}
}

func ldIA(r *registers.Registers, _ *bus, _ int8) int {
	r.I = r.A
	return 9
}

func ldRA(r *registers.Registers, _ *bus, _ int8) int {
	r.R = r.A
	return 9
}

func ldAI(r *registers.Registers, _ *bus, _ int8) int {
	r.A = r.I
	r.F = flags.Unaffect(r.F, registers.Carry) | flags.SZ53(r.A) | flags.OverflowCheck(r.IFF2)
	return 9
}

func ldAR(r *registers.Registers, _ *bus, _ int8) int {
	r.A = r.R
	r.F = flags.Unaffect(r.F, registers.Carry) | flags.SZ53(r.A) | flags.OverflowCheck(r.IFF2)
	return 9
}

func rrd(r *registers.Registers, b *bus, _ int8) int {
	a := addressing.Indirect(r.HL())
	v := b.read(a)
	b.write(a, r.A<<4|v>>4)
	r.A = r.A&0xf0 | v&0x0f
	r.F = flags.Unaffect(r.F, registers.Carry) | flags.SZ53P(r.A)
	r.WZ = a + 1
	return 18
}

func rld(r *registers.Registers, b *bus, _ int8) int {
	a := addressing.Indirect(r.HL())
	v := b.read(a)
	b.write(a, v<<4|r.A&0x0f)
	r.A = r.A&0xf0 | v>>4
	r.F = flags.Unaffect(r.F, registers.Carry) | flags.SZ53P(r.A)
	r.WZ = a + 1
	return 18
}

// blockInstruction returns the handler for the LDI, CPI, INI and OUTI family
// of instructions. the y field selects the direction (bit 0) and whether the
// instruction repeats (bit 1). the z field selects the operation.
//
// a repeating instruction that has not finished winds the program counter
// back to the start of the instruction and costs an additional five cycles.
func blockInstruction(y uint8, z uint8) handler {
	step := uint16(1)
	if y&0x01 == 0x01 {
		step = 0xffff
	}
	repeat := y&0x02 == 0x02

	var op func(r *registers.Registers, b *bus, step uint16) bool
	switch z {
	case 0:
		op = blockLoad
	case 1:
		op = blockCompare
	case 2:
		op = blockIn
	case 3:
		op = blockOut
	}

	return func(r *registers.Registers, b *bus, _ int8) int {
		if op(r, b, step) && repeat {
			r.PC -= 2
			r.WZ = r.PC + 1
			return 21
		}
		return 16
	}
}

// the block functions return true if a repeating form of the instruction
// should continue.

func blockLoad(r *registers.Registers, b *bus, step uint16) bool {
	v := b.read(r.HL())
	b.write(r.DE(), v)
	r.SetHL(r.HL() + step)
	r.SetDE(r.DE() + step)
	r.SetBC(r.BC() - 1)

	n := v + r.A
	r.F = flags.Unaffect(r.F, registers.Sign|registers.Zero|registers.Carry) |
		flags.X3Check(n) | flags.X5Check(n<<4) | flags.OverflowCheck(r.BC() != 0)

	return r.BC() != 0
}

func blockCompare(r *registers.Registers, b *bus, step uint16) bool {
	v := b.read(r.HL())
	res := r.A - v
	half := (r.A^v^res)&0x10 == 0x10
	r.SetHL(r.HL() + step)
	r.SetBC(r.BC() - 1)
	r.WZ += step

	n := res
	if half {
		n--
	}
	r.F = flags.Unaffect(r.F, registers.Carry) | flags.SignCheck(res) | flags.ZeroCheck(res) |
		flags.HalfCarryCheck(half) | flags.X3Check(n) | flags.X5Check(n<<4) |
		flags.OverflowCheck(r.BC() != 0) | registers.Subtract

	return r.BC() != 0 && res != 0
}

func blockIn(r *registers.Registers, b *bus, step uint16) bool {
	v := b.in(r.BC())
	r.WZ = r.BC() + step
	b.write(r.HL(), v)
	r.B--
	r.SetHL(r.HL() + step)

	k := uint16(v) + uint16(r.C+uint8(step))
	blockIOFlags(r, v, k)

	return r.B != 0
}

func blockOut(r *registers.Registers, b *bus, step uint16) bool {
	v := b.read(r.HL())
	r.B--
	b.out(r.BC(), v)
	r.WZ = r.BC() + step
	r.SetHL(r.HL() + step)

	k := uint16(v) + uint16(r.L)
	blockIOFlags(r, v, k)

	return r.B != 0
}

func blockIOFlags(r *registers.Registers, v uint8, k uint16) {
	r.F = flags.SZ53(r.B) | flags.HalfCarryCheck(k > 0xff) | flags.CarryCheck(k > 0xff) |
		flags.Parity(uint8(k)&0x07^r.B)
	if v&0x80 == 0x80 {
		r.F |= registers.Subtract
	}
}
