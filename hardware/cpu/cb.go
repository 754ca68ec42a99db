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

// cbTable builds the table of rotate, shift and bit instructions that follow
// the CB prefix.
func cbTable() [256]handler {
	var t [256]handler

	for i := range t {
		f := instructions.Decode(uint8(i))
		target := registers.Target(f.Z)

		switch instructions.BitOperation(f.X) {
		case instructions.Rotate:
			t[i] = cbRotate(instructions.Rotation(f.Y), target)
		case instructions.BIT:
			t[i] = cbBit(f.Y, target)
		case instructions.RES:
			t[i] = cbModify(f.Y, target, false)
		case instructions.SET:
			t[i] = cbModify(f.Y, target, true)
		}
	}

	return t
}

func cbRotate(rot instructions.Rotation, target registers.Target) handler {
	if target == registers.MemoryOnly {
		return func(r *registers.Registers, b *bus, _ int8) int {
			a := addressing.Indirect(r.HL())
			v, c := rotate(rot, b.read(a), r.F.Has(registers.Carry))
			r.F = rotateFlags(v, c)
			b.write(a, v)
			return 15
		}
	}
	return func(r *registers.Registers, _ *bus, _ int8) int {
		v, c := rotate(rot, r.Get8(target), r.F.Has(registers.Carry))
		r.F = rotateFlags(v, c)
		r.Set8(target, v)
		return 8
	}
}

// the undocumented flags of BIT n,(HL) come from the internal WZ register.
func cbBit(n uint8, target registers.Target) handler {
	if target == registers.MemoryOnly {
		return func(r *registers.Registers, b *bus, _ int8) int {
			v := b.read(addressing.Indirect(r.HL()))
			r.F = bitFlags(r, n, v, flags.X5Check16(r.WZ)|flags.X3Check16(r.WZ))
			return 12
		}
	}
	return func(r *registers.Registers, _ *bus, _ int8) int {
		v := r.Get8(target)
		r.F = bitFlags(r, n, v, flags.X5Check(v)|flags.X3Check(v))
		return 8
	}
}

func cbModify(n uint8, target registers.Target, set bool) handler {
	if target == registers.MemoryOnly {
		return func(r *registers.Registers, b *bus, _ int8) int {
			a := addressing.Indirect(r.HL())
			b.write(a, modifyBit(b.read(a), n, set))
			return 15
		}
	}
	return func(r *registers.Registers, _ *bus, _ int8) int {
		r.Set8(target, modifyBit(r.Get8(target), n, set))
		return 8
	}
}

func modifyBit(v uint8, n uint8, set bool) uint8 {
	if set {
		return v | 1<<n
	}
	return v &^ (1 << n)
}
