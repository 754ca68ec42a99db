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
	"github.com/jetsetilly/gopher80/hardware/cpu/execution"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
	"github.com/jetsetilly/gopher80/hardware/memory/cpubus"
)

// bus is the CPU's view of memory and I/O for the duration of one instruction.
// the first error from the memory implementation is kept and all subsequent
// accesses are suppressed: reads return 0xff and writes are dropped.
//
// the bus also records the decoding of the instruction for the
// execution.Result.
type bus struct {
	mem   cpubus.Memory
	ports cpubus.Ports
	err   error

	result execution.Result
}

func (b *bus) read(address uint16) uint8 {
	if b.err != nil {
		return 0xff
	}
	v, err := b.mem.Read(address)
	if err != nil {
		b.err = err
		return 0xff
	}
	return v
}

func (b *bus) write(address uint16, data uint8) {
	if b.err != nil {
		return
	}
	b.err = b.mem.Write(address, data)
}

// 16 bit values are stored low byte first
func (b *bus) read16(address uint16) uint16 {
	lo := b.read(address)
	hi := b.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (b *bus) write16(address uint16, data uint16) {
	b.write(address, uint8(data))
	b.write(address+1, uint8(data>>8))
}

func (b *bus) in(port uint16) uint8 {
	if b.err != nil || b.ports == nil {
		return 0xff
	}
	v, err := b.ports.In(port)
	if err != nil {
		b.err = err
		return 0xff
	}
	return v
}

func (b *bus) out(port uint16, data uint8) {
	if b.err != nil || b.ports == nil {
		return
	}
	b.err = b.ports.Out(port, data)
}

// fetch the byte at the program counter and advance the program counter.
func (b *bus) fetch(r *registers.Registers) uint8 {
	v := b.read(r.PC)
	r.PC++
	b.result.ByteCount++
	return v
}

// fetch16 fetches a 16 bit operand from the program counter.
func (b *bus) fetch16(r *registers.Registers) uint16 {
	lo := b.fetch(r)
	hi := b.fetch(r)
	return uint16(hi)<<8 | uint16(lo)
}

// fetchOpcode is an opcode fetch (M1) cycle. the refresh register is
// incremented on every M1 cycle, including those for prefix bytes.
func (b *bus) fetchOpcode(r *registers.Registers, table instructions.Table) uint8 {
	r.IncR()
	op := b.fetch(r)
	b.result.Table = table
	b.result.Opcode = op
	return op
}

// fetchDisplacement fetches the signed displacement of an indexed instruction.
func (b *bus) fetchDisplacement(r *registers.Registers) int8 {
	d := addressing.Displacement(b.fetch(r))
	b.result.Displacement = d
	b.result.HasDisplacement = true
	return d
}

func (b *bus) push(r *registers.Registers, v uint16) {
	r.SP--
	b.write(r.SP, uint8(v>>8))
	r.SP--
	b.write(r.SP, uint8(v))
}

func (b *bus) pop(r *registers.Registers) uint16 {
	lo := b.read(r.SP)
	r.SP++
	hi := b.read(r.SP)
	r.SP++
	return uint16(hi)<<8 | uint16(lo)
}
