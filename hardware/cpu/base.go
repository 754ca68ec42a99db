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

// baseTable builds the table of unprefixed instructions. instructions that
// refer to HL, H or L do so through the Index() and Reg8() functions of the
// Registers type so that the same handlers can be used by the DD and FD
// tables.
func baseTable() [256]handler {
	var t [256]handler

	for i := range t {
		op := uint8(i)
		f := instructions.Decode(op)

		switch f.X {
		case 0:
			t[i] = baseX0(f)
		case 1:
			if op == 0x76 {
				t[i] = halt
			} else {
				t[i] = ldRegReg(registers.Target(f.Y), registers.Target(f.Z))
			}
		case 2:
			t[i] = aluReg(instructions.Operation(f.Y), registers.Target(f.Z))
		case 3:
			t[i] = baseX3(f)
		}
	}

	return t
}

func baseX0(f instructions.Fields) handler {
	switch f.Z {
	case 0:
		switch f.Y {
		case 0:
			return nop
		case 1:
			return exAF
		case 2:
			return djnz
		case 3:
			return jr
		default:
			return jrCond(instructions.Condition(f.Y - 4))
		}
	case 1:
		if f.Q == 0 {
			return ldPairImm(f.P)
		}
		return addIndexPair(f.P)
	case 2:
		switch f.P {
		case 0, 1:
			if f.Q == 0 {
				return ldPairIndirectA(f.P)
			}
			return ldAPairIndirect(f.P)
		case 2:
			if f.Q == 0 {
				return ldAbsIndex
			}
			return ldIndexAbs
		case 3:
			if f.Q == 0 {
				return ldAbsA
			}
			return ldAAbs
		}
	case 3:
		if f.Q == 0 {
			return incPair(f.P)
		}
		return decPair(f.P)
	case 4:
		return incReg(registers.Target(f.Y))
	case 5:
		return decReg(registers.Target(f.Y))
	case 6:
		return ldRegImm(registers.Target(f.Y))
	case 7:
		if f.Y < 4 {
			return rotateA(instructions.Rotation(f.Y))
		}
		switch f.Y {
		case 4:
			return daaA
		case 5:
			return cpl
		case 6:
			return scf
		case 7:
			return ccf
		}
	}
	return nil
}

func baseX3(f instructions.Fields) handler {
	switch f.Z {
	case 0:
		return retCond(instructions.Condition(f.Y))
	case 1:
		if f.Q == 0 {
			return pop(f.P)
		}
		switch f.P {
		case 0:
			return ret
		case 1:
			return exx
		case 2:
			return jpIndex
		case 3:
			return ldSPIndex
		}
	case 2:
		return jpCond(instructions.Condition(f.Y))
	case 3:
		switch f.Y {
		case 0:
			return jp
		case 1:
			return chain(instructions.CB)
		case 2:
			return outImmA
		case 3:
			return inAImm
		case 4:
			return exSPIndex
		case 5:
			return exDEHL
		case 6:
			return di
		case 7:
			return ei
		}
	case 4:
		return callCond(instructions.Condition(f.Y))
	case 5:
		if f.Q == 0 {
			return push(f.P)
		}
		switch f.P {
		case 0:
			return call
		case 1:
			return prefixIndex(registers.IndexX)
		case 2:
			return chain(instructions.ED)
		case 3:
			return prefixIndex(registers.IndexY)
		}
	case 6:
		return aluImm(instructions.Operation(f.Y))
	case 7:
		return rst(uint16(f.Y) * 8)
	}
	return nil
}

// register pairs as selected by the p field of an opcode. HL is redirected to
// IX or IY by the active prefix.
func getPair(r *registers.Registers, p uint8) uint16 {
	switch p {
	case 0:
		return r.BC()
	case 1:
		return r.DE()
	case 2:
		return r.Index()
	}
	return r.SP
}

func setPair(r *registers.Registers, p uint8, v uint16) {
	switch p {
	case 0:
		r.SetBC(v)
	case 1:
		r.SetDE(v)
	case 2:
		r.SetIndex(v)
	default:
		r.SP = v
	}
}

// the PUSH and POP instructions use AF rather than SP for the fourth pair.
func getPair2(r *registers.Registers, p uint8) uint16 {
	if p == 3 {
		return r.AF()
	}
	return getPair(r, p)
}

func setPair2(r *registers.Registers, p uint8, v uint16) {
	if p == 3 {
		r.SetAF(v)
		return
	}
	setPair(r, p, v)
}

func nop(_ *registers.Registers, _ *bus, _ int8) int {
	return 4
}

func halt(r *registers.Registers, _ *bus, _ int8) int {
	r.Halted = true
	return 4
}

func exAF(r *registers.Registers, _ *bus, _ int8) int {
	r.ExchangeAF()
	return 4
}

func exx(r *registers.Registers, _ *bus, _ int8) int {
	r.Exchange()
	return 4
}

func exDEHL(r *registers.Registers, _ *bus, _ int8) int {
	de := r.DE()
	r.SetDE(r.HL())
	r.SetHL(de)
	return 4
}

func exSPIndex(r *registers.Registers, b *bus, _ int8) int {
	v := b.read16(r.SP)
	b.write16(r.SP, r.Index())
	r.SetIndex(v)
	r.WZ = v
	return 19
}

func di(r *registers.Registers, _ *bus, _ int8) int {
	r.IFF1 = false
	r.IFF2 = false
	return 4
}

func ei(r *registers.Registers, _ *bus, _ int8) int {
	r.IFF1 = true
	r.IFF2 = true
	r.EIPending = true
	return 4
}

func djnz(r *registers.Registers, b *bus, _ int8) int {
	d := addressing.Displacement(b.fetch(r))
	r.B--
	if r.B != 0 {
		r.PC = addressing.Relative(r.PC, d)
		r.WZ = r.PC
		return 13
	}
	return 8
}

func jr(r *registers.Registers, b *bus, _ int8) int {
	d := addressing.Displacement(b.fetch(r))
	r.PC = addressing.Relative(r.PC, d)
	r.WZ = r.PC
	return 12
}

func jrCond(c instructions.Condition) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		d := addressing.Displacement(b.fetch(r))
		if condition(r.F, c) {
			r.PC = addressing.Relative(r.PC, d)
			r.WZ = r.PC
			return 12
		}
		return 7
	}
}

func jp(r *registers.Registers, b *bus, _ int8) int {
	r.PC = b.fetch16(r)
	r.WZ = r.PC
	return 10
}

func jpCond(c instructions.Condition) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		a := b.fetch16(r)
		r.WZ = a
		if condition(r.F, c) {
			r.PC = a
		}
		return 10
	}
}

func jpIndex(r *registers.Registers, _ *bus, _ int8) int {
	r.PC = r.Index()
	return 4
}

func call(r *registers.Registers, b *bus, _ int8) int {
	a := b.fetch16(r)
	r.WZ = a
	b.push(r, r.PC)
	r.PC = a
	return 17
}

func callCond(c instructions.Condition) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		a := b.fetch16(r)
		r.WZ = a
		if condition(r.F, c) {
			b.push(r, r.PC)
			r.PC = a
			return 17
		}
		return 10
	}
}

func ret(r *registers.Registers, b *bus, _ int8) int {
	r.PC = b.pop(r)
	r.WZ = r.PC
	return 10
}

func retCond(c instructions.Condition) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		if condition(r.F, c) {
			r.PC = b.pop(r)
			r.WZ = r.PC
			return 11
		}
		return 5
	}
}

func rst(address uint16) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		b.push(r, r.PC)
		r.PC = address
		r.WZ = address
		return 11
	}
}

func push(p uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		b.push(r, getPair2(r, p))
		return 11
	}
}

func pop(p uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		setPair2(r, p, b.pop(r))
		return 10
	}
}

func ldPairImm(p uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		setPair(r, p, b.fetch16(r))
		return 10
	}
}

func addIndexPair(p uint8) handler {
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.SetIndex(add16(r, r.Index(), getPair(r, p)))
		return 11
	}
}

func incPair(p uint8) handler {
	return func(r *registers.Registers, _ *bus, _ int8) int {
		setPair(r, p, getPair(r, p)+1)
		return 6
	}
}

func decPair(p uint8) handler {
	return func(r *registers.Registers, _ *bus, _ int8) int {
		setPair(r, p, getPair(r, p)-1)
		return 6
	}
}

func ldSPIndex(r *registers.Registers, _ *bus, _ int8) int {
	r.SP = r.Index()
	return 6
}

// LD (BC),A and LD (DE),A
func ldPairIndirectA(p uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		a := addressing.Indirect(getPair(r, p))
		b.write(a, r.A)
		r.WZ = uint16(r.A)<<8 | (a+1)&0x00ff
		return 7
	}
}

// LD A,(BC) and LD A,(DE)
func ldAPairIndirect(p uint8) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		a := addressing.Indirect(getPair(r, p))
		r.A = b.read(a)
		r.WZ = a + 1
		return 7
	}
}

// LD (nn),HL
func ldAbsIndex(r *registers.Registers, b *bus, _ int8) int {
	a := b.fetch16(r)
	b.write16(a, r.Index())
	r.WZ = a + 1
	return 16
}

// LD HL,(nn)
func ldIndexAbs(r *registers.Registers, b *bus, _ int8) int {
	a := b.fetch16(r)
	r.SetIndex(b.read16(a))
	r.WZ = a + 1
	return 16
}

// LD (nn),A
func ldAbsA(r *registers.Registers, b *bus, _ int8) int {
	a := b.fetch16(r)
	b.write(a, r.A)
	r.WZ = uint16(r.A)<<8 | (a+1)&0x00ff
	return 13
}

// LD A,(nn)
func ldAAbs(r *registers.Registers, b *bus, _ int8) int {
	a := b.fetch16(r)
	r.A = b.read(a)
	r.WZ = a + 1
	return 13
}

func ldRegReg(dst registers.Target, src registers.Target) handler {
	switch {
	case src == registers.MemoryOnly:
		return func(r *registers.Registers, b *bus, _ int8) int {
			r.Set8(dst, b.read(addressing.Indirect(r.HL())))
			return 7
		}
	case dst == registers.MemoryOnly:
		return func(r *registers.Registers, b *bus, _ int8) int {
			b.write(addressing.Indirect(r.HL()), r.Get8(src))
			return 7
		}
	}
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.SetReg8(dst, r.Reg8(src))
		return 4
	}
}

func ldRegImm(dst registers.Target) handler {
	if dst == registers.MemoryOnly {
		return func(r *registers.Registers, b *bus, _ int8) int {
			b.write(addressing.Indirect(r.HL()), b.fetch(r))
			return 10
		}
	}
	return func(r *registers.Registers, b *bus, _ int8) int {
		r.SetReg8(dst, b.fetch(r))
		return 7
	}
}

func incReg(t registers.Target) handler {
	if t == registers.MemoryOnly {
		return func(r *registers.Registers, b *bus, _ int8) int {
			a := addressing.Indirect(r.HL())
			b.write(a, inc8(r, b.read(a)))
			return 11
		}
	}
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.SetReg8(t, inc8(r, r.Reg8(t)))
		return 4
	}
}

func decReg(t registers.Target) handler {
	if t == registers.MemoryOnly {
		return func(r *registers.Registers, b *bus, _ int8) int {
			a := addressing.Indirect(r.HL())
			b.write(a, dec8(r, b.read(a)))
			return 11
		}
	}
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.SetReg8(t, dec8(r, r.Reg8(t)))
		return 4
	}
}

func aluReg(op instructions.Operation, src registers.Target) handler {
	if src == registers.MemoryOnly {
		return func(r *registers.Registers, b *bus, _ int8) int {
			alu(r, op, b.read(addressing.Indirect(r.HL())))
			return 7
		}
	}
	return func(r *registers.Registers, _ *bus, _ int8) int {
		alu(r, op, r.Reg8(src))
		return 4
	}
}

func aluImm(op instructions.Operation) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		alu(r, op, b.fetch(r))
		return 7
	}
}

// RLCA, RRCA, RLA and RRA. the sign, zero and parity flags are not affected.
func rotateA(rot instructions.Rotation) handler {
	return func(r *registers.Registers, _ *bus, _ int8) int {
		var c bool
		r.A, c = rotate(rot, r.A, r.F.Has(registers.Carry))
		r.F = flags.Unaffect(r.F, registers.Sign|registers.Zero|registers.ParityOverflow) |
			flags.X5Check(r.A) | flags.X3Check(r.A) | flags.CarryCheck(c)
		return 4
	}
}

func daaA(r *registers.Registers, _ *bus, _ int8) int {
	daa(r)
	return 4
}

func cpl(r *registers.Registers, _ *bus, _ int8) int {
	r.A = ^r.A
	r.F = flags.Unaffect(r.F, registers.Sign|registers.Zero|registers.ParityOverflow|registers.Carry) |
		registers.HalfCarry | registers.Subtract | flags.X5Check(r.A) | flags.X3Check(r.A)
	return 4
}

func scf(r *registers.Registers, _ *bus, _ int8) int {
	r.F = flags.Unaffect(r.F, registers.Sign|registers.Zero|registers.ParityOverflow) |
		registers.Carry | flags.X5Check(r.A) | flags.X3Check(r.A)
	return 4
}

// the half-carry flag takes the previous value of the carry flag.
func ccf(r *registers.Registers, _ *bus, _ int8) int {
	c := r.F.Has(registers.Carry)
	r.F = flags.Unaffect(r.F, registers.Sign|registers.Zero|registers.ParityOverflow) |
		flags.HalfCarryCheck(c) | flags.CarryCheck(!c) | flags.X5Check(r.A) | flags.X3Check(r.A)
	return 4
}

// OUT (n),A. the accumulator forms the high byte of the port address.
func outImmA(r *registers.Registers, b *bus, _ int8) int {
	n := b.fetch(r)
	b.out(uint16(r.A)<<8|uint16(n), r.A)
	r.WZ = uint16(r.A)<<8 | uint16(n+1)
	return 11
}

// IN A,(n). no flags are affected.
func inAImm(r *registers.Registers, b *bus, _ int8) int {
	n := b.fetch(r)
	port := uint16(r.A)<<8 | uint16(n)
	r.A = b.in(port)
	r.WZ = port + 1
	return 11
}
