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
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
)

// indexTable builds the table for the DD and FD prefixes from the unprefixed
// table. most instructions behave as they do without the prefix, with HL
// replaced by the index register, and cost an extra four cycles. instructions
// that refer to (HL) instead refer to (IX+d) or (IY+d) and the displacement
// byte is fetched from after the opcode.
//
// the same table serves both prefixes because the handlers consult the prefix
// field of the Registers type.
func indexTable(base [256]handler) [256]handler {
	var t [256]handler

	for i := range t {
		op := uint8(i)
		f := instructions.Decode(op)

		switch {
		case op == 0xcb:
			t[i] = indexThenCB
		case op == 0xdd:
			t[i] = redundantIndex(registers.IndexX)
		case op == 0xfd:
			t[i] = redundantIndex(registers.IndexY)
		case op == 0xed:
			t[i] = indexThenED
		case op == 0x34:
			t[i] = incIndexed
		case op == 0x35:
			t[i] = decIndexed
		case op == 0x36:
			t[i] = ldIndexedImm
		case f.X == 1 && op != 0x76 && f.Z == 6:
			t[i] = ldRegIndexed(registers.Target(f.Y))
		case f.X == 1 && op != 0x76 && f.Y == 6:
			t[i] = ldIndexedReg(registers.Target(f.Z))
		case f.X == 2 && f.Z == 6:
			t[i] = aluIndexed(instructions.Operation(f.Y))
		default:
			t[i] = plus4(base[i])
		}
	}

	return t
}

// indexed returns the effective address of an (IX+d) or (IY+d) operand,
// fetching the displacement from the instruction stream.
func indexed(r *registers.Registers, b *bus) uint16 {
	a := addressing.ResolveIndexed(r.Index(), b.fetchDisplacement(r))
	r.WZ = a
	return a
}

func incIndexed(r *registers.Registers, b *bus, _ int8) int {
	a := indexed(r, b)
	b.write(a, inc8(r, b.read(a)))
	return 23
}

func decIndexed(r *registers.Registers, b *bus, _ int8) int {
	a := indexed(r, b)
	b.write(a, dec8(r, b.read(a)))
	return 23
}

func ldIndexedImm(r *registers.Registers, b *bus, _ int8) int {
	a := indexed(r, b)
	b.write(a, b.fetch(r))
	return 19
}

// LD r,(IX+d). the destination is always the real register, even for H and L.
func ldRegIndexed(dst registers.Target) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		r.Set8(dst, b.read(indexed(r, b)))
		return 19
	}
}

// LD (IX+d),r. the source is always the real register, even for H and L.
func ldIndexedReg(src registers.Target) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		b.write(indexed(r, b), r.Get8(src))
		return 19
	}
}

func aluIndexed(op instructions.Operation) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		alu(r, op, b.read(indexed(r, b)))
		return 19
	}
}
