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

// indexBitTable builds the table for the DDCB and FDCB prefixes. every
// instruction operates on (IX+d) or (IY+d). the displacement has already been
// fetched by the time the handler is called and is passed as the d argument.
//
// rotate, shift, RES and SET instructions write the result back to memory and
// also copy it to the register selected by the lowest three bits of the
// opcode. a selection of 6 is the memory-only form.
func indexBitTable() [256]handler {
	var t [256]handler

	for i := range t {
		op := uint8(i)
		f := instructions.Decode(op)
		target := registers.DecodeTarget(op)

		switch instructions.BitOperation(f.X) {
		case instructions.Rotate:
			t[i] = rotateIndexed(instructions.Rotation(f.Y), target)
		case instructions.BIT:
			t[i] = bitIndexed(f.Y)
		case instructions.RES:
			t[i] = modifyIndexed(f.Y, target, false)
		case instructions.SET:
			t[i] = modifyIndexed(f.Y, target, true)
		}
	}

	return t
}

func rotateIndexed(rot instructions.Rotation, target registers.Target) handler {
	return func(r *registers.Registers, b *bus, d int8) int {
		a := addressing.ResolveIndexed(r.Index(), d)
		r.WZ = a
		v, c := rotate(rot, b.read(a), r.F.Has(registers.Carry))
		r.F = rotateFlags(v, c)
		b.write(a, v)
		r.Set8(target, v)
		return 23
	}
}

// the undocumented flags come from the high byte of the effective address.
func bitIndexed(n uint8) handler {
	return func(r *registers.Registers, b *bus, d int8) int {
		a := addressing.ResolveIndexed(r.Index(), d)
		r.WZ = a
		r.F = bitFlags(r, n, b.read(a), flags.X5Check16(a)|flags.X3Check16(a))
		return 20
	}
}

func modifyIndexed(n uint8, target registers.Target, set bool) handler {
	return func(r *registers.Registers, b *bus, d int8) int {
		a := addressing.ResolveIndexed(r.Index(), d)
		r.WZ = a
		v := modifyBit(b.read(a), n, set)
		b.write(a, v)
		r.Set8(target, v)
		return 23
	}
}
