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
	"fmt"

	"github.com/jetsetilly/gopher80/hardware/cpu/execution"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
	"github.com/jetsetilly/gopher80/hardware/memory/cpubus"
)

// CPU implements the Z80. Register logic is implemented by the Registers type
// in the registers sub-package.
type CPU struct {
	registers.Registers

	bus bus

	// the number of T-states executed since the last Reset()
	Cycles uint64

	// last result. the Final field will be false if no instruction has been
	// executed since the last Reset()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{}
	mc.Plumb(mem)
	mc.Reset()
	return mc
}

// Plumb CPU into the system. If mem also implements cpubus.Ports then it will
// be used for I/O.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.bus.mem = mem
	mc.bus.ports, _ = mem.(cpubus.Ports)
}

// Snapshot creates a copy of the CPU in its current state. The copy is not
// attached to any memory.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.bus = bus{}
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s IM%d IFF1=%v IFF2=%v", mc.Registers.String(), mc.IM, mc.IFF1, mc.IFF2)
}

// Reset CPU to power-on state.
func (mc *CPU) Reset() {
	mc.Registers.Reset()
	mc.Cycles = 0
	mc.LastResult.Reset()
}

// begin prepares the bus for a new instruction or interrupt acknowledgement.
func (mc *CPU) begin() {
	mc.bus.err = nil
	mc.bus.result.Reset()
	mc.bus.result.Address = mc.PC
}

// end finalises the result of an instruction or interrupt acknowledgement. a
// result is not final and the cycle count is not advanced if the bus reported
// an error.
func (mc *CPU) end(cycles int) (int, error) {
	mc.Prefix = registers.NoPrefix
	mc.bus.result.Cycles = cycles
	mc.bus.result.Final = mc.bus.err == nil
	mc.LastResult = mc.bus.result
	if mc.bus.err == nil {
		mc.Cycles += uint64(cycles)
	}
	return cycles, mc.bus.err
}

// Step executes the next instruction, including any prefix bytes, and returns
// the number of T-states it took. If the CPU is halted no instruction is
// fetched and the function returns the four T-states of the internal NOP.
//
// The returned error is the first error returned by the memory bus during the
// instruction, if any. After an error the instruction has been run to
// completion with 0xff for every read that followed the error, so the state
// of the registers is undefined. The Cycles counter is not advanced and the
// Final field of LastResult is false. The address and decoding of the failed
// instruction are still available in LastResult.
func (mc *CPU) Step() (int, error) {
	mc.begin()

	// interrupts are accepted again after the instruction that follows EI
	mc.EIPending = false

	if mc.Halted {
		mc.IncR()
		mc.bus.result.Halted = true
		return mc.end(4)
	}

	op := mc.bus.fetchOpcode(&mc.Registers, instructions.Unprefixed)
	return mc.end(tables[instructions.Unprefixed][op](&mc.Registers, &mc.bus, 0))
}

// Interrupt requests a maskable interrupt. The data argument is the value
// placed on the data bus by the interrupting device. The request is ignored,
// and zero cycles returned, if interrupts are disabled or if the previous
// instruction was EI.
//
// In interrupt mode 0 the data is treated as an instruction. Only the RST
// instructions are supported; any other value is treated as RST 38h. In mode 1
// the data is ignored and the CPU calls address 0x0038. In mode 2 the data
// forms the low byte of the address of the interrupt vector.
func (mc *CPU) Interrupt(data uint8) (int, error) {
	if !mc.IFF1 || mc.EIPending {
		return 0, nil
	}

	mc.begin()
	mc.bus.result.Interrupt = true

	mc.Halted = false
	mc.IFF1 = false
	mc.IFF2 = false
	mc.IncR()

	var cycles int

	switch mc.IM {
	case 2:
		vector := uint16(mc.I)<<8 | uint16(data)
		mc.bus.push(&mc.Registers, mc.PC)
		mc.PC = mc.bus.read16(vector)
		cycles = 19
	case 1:
		mc.bus.push(&mc.Registers, mc.PC)
		mc.PC = 0x0038
		cycles = 13
	default:
		mc.bus.push(&mc.Registers, mc.PC)
		if data&0xc7 == 0xc7 {
			mc.PC = uint16(data & 0x38)
		} else {
			mc.PC = 0x0038
		}
		cycles = 13
	}

	mc.WZ = mc.PC

	return mc.end(cycles)
}

// NonMaskableInterrupt calls address 0x0066. It cannot be disabled. The state
// of IFF1 is preserved in IFF2 so that RETN can restore it.
func (mc *CPU) NonMaskableInterrupt() (int, error) {
	mc.begin()
	mc.bus.result.Interrupt = true

	mc.Halted = false
	mc.IFF1 = false
	mc.IncR()
	mc.bus.push(&mc.Registers, mc.PC)
	mc.PC = 0x0066
	mc.WZ = mc.PC

	return mc.end(11)
}
