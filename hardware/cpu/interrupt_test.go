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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
	"github.com/jetsetilly/gopher80/test"
)

func TestInterruptDisabled(t *testing.T) {
	mc, _ := newCPU()

	cycles, err := mc.Interrupt(0xff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC, uint16(0x0000))
}

func TestInterruptAfterEI(t *testing.T) {
	mc, mem := newCPU()
	mc.SP = 0x8000

	// IM 1; EI; NOP
	mem.putInstructions(0x0000, 0xed, 0x56, 0xfb, 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.IM, uint8(1))
	step(t, mc)
	test.ExpectSuccess(t, mc.IFF1 && mc.IFF2)

	// not accepted immediately after EI
	cycles, err := mc.Interrupt(0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)

	step(t, mc)
	cycles, err = mc.Interrupt(0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 13)
	test.ExpectEquality(t, mc.PC, uint16(0x0038))
	test.ExpectEquality(t, mc.WZ, uint16(0x0038))
	test.ExpectEquality(t, mc.SP, uint16(0x7ffe))
	mem.assert(t, 0x7ffe, 0x04)
	mem.assert(t, 0x7fff, 0x00)
	test.ExpectFailure(t, mc.IFF1 || mc.IFF2)
	test.ExpectSuccess(t, mc.LastResult.Interrupt)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestInterruptModes(t *testing.T) {
	mc, mem := newCPU()

	// mode 0 with an RST instruction on the data bus
	mc.SP = 0x8000
	mc.IFF1 = true
	cycles, _ := mc.Interrupt(0xcf)
	test.ExpectEquality(t, cycles, 13)
	test.ExpectEquality(t, mc.PC, uint16(0x0008))

	// mode 0 with any other value behaves like RST 38h
	mc.IFF1 = true
	mc.Interrupt(0x00)
	test.ExpectEquality(t, mc.PC, uint16(0x0038))

	// mode 2 reads the vector from the table pointed to by I
	mc.IM = 2
	mc.I = 0x40
	mc.IFF1 = true
	mem.internal[0x4010] = 0x34
	mem.internal[0x4011] = 0x12
	cycles, _ = mc.Interrupt(0x10)
	test.ExpectEquality(t, cycles, 19)
	test.ExpectEquality(t, mc.PC, uint16(0x1234))
	test.ExpectEquality(t, mc.SP, uint16(0x7ffa))

	// RETI returns to the interrupted code
	mem.putInstructions(0x1234, 0xed, 0x4d)
	test.ExpectEquality(t, step(t, mc), 14)
	test.ExpectEquality(t, mc.PC, uint16(0x0038))
}

func TestNonMaskableInterrupt(t *testing.T) {
	mc, mem := newCPU()
	mc.SP = 0x8000
	mc.PC = 0x0200
	mc.IFF1 = true
	mc.IFF2 = true

	cycles, err := mc.NonMaskableInterrupt()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 11)
	test.ExpectEquality(t, mc.PC, uint16(0x0066))
	test.ExpectFailure(t, mc.IFF1)
	test.ExpectSuccess(t, mc.IFF2)

	// RETN restores IFF1 from IFF2
	mem.putInstructions(0x0066, 0xed, 0x45)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x0200))
	test.ExpectSuccess(t, mc.IFF1)
}

func TestInterruptEndsHalt(t *testing.T) {
	mc, mem := newCPU()
	mc.SP = 0x8000

	// EI; HALT
	mem.putInstructions(0x0000, 0xfb, 0x76)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)
	step(t, mc)

	mc.IM = 1
	cycles, _ := mc.Interrupt(0x00)
	test.ExpectEquality(t, cycles, 13)
	test.ExpectFailure(t, mc.Halted)

	// the return address is the instruction after the HALT
	mem.assert(t, 0x7ffe, 0x02)
}

func TestInterruptRegister(t *testing.T) {
	mc, mem := newCPU()
	mc.IFF2 = true

	// LD A,I copies IFF2 to the parity flag
	mem.putInstructions(0x0000, 0xed, 0x57)
	mc.I = 0x00
	mc.F = registers.Carry
	test.ExpectEquality(t, step(t, mc), 9)
	test.ExpectEquality(t, mc.F, registers.Zero|registers.ParityOverflow|registers.Carry)
}
