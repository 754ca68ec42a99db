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

package cpm

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/cpu"
	"github.com/jetsetilly/gopher80/hardware/cpu/execution"
	"github.com/jetsetilly/gopher80/hardware/memory"
	"github.com/jetsetilly/gopher80/logger"
)

// Sentinel error patterns.
const (
	ProgramTooLarge = "cpm: program too large (%d bytes)"
	CycleLimit      = "cpm: cycle limit reached (%d cycles)"
	Halted          = "cpm: cpu halted at %#04x"
	Interrupted     = "cpm: interrupted"
	ConsoleError    = "cpm: console: %v"
	CPUError        = "cpm: %v"
)

// Memory map of the emulated CP/M system.
const (
	// a jump to the warm boot address ends the program
	WarmBoot = 0x0000

	// programs call this address to request a BDOS function
	BDOS = 0x0005

	// programs are loaded at the start of the transient program area
	TPA = 0x0100

	// the BDOS entry point proper. the jump at the BDOS address points here
	// and programs use the jump to find the top of usable memory
	bdosBase = 0xfe00
)

// Throttle implementations are called after every instruction with the number
// of cycles the instruction took. The limiter.ClockLimiter type satisfies the
// interface.
type Throttle interface {
	Consume(cycles int)
}

// Machine is a CPU and memory with the BDOS traps in place.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	con *console

	// optional throttle
	Throttle Throttle

	// optional function called after every instruction
	Trace func(r execution.Result, mc *cpu.CPU)

	// the number of BDOS calls serviced
	Calls int

	quit     chan struct{}
	quitOnce sync.Once
}

// NewMachine loads the program at the start of the transient program area.
// Console output is written to the output io.Writer and console input read
// from the input io.Reader. Either can be nil.
func NewMachine(program []uint8, output io.Writer, input io.Reader) (*Machine, error) {
	if len(program) > bdosBase-TPA {
		return nil, curated.Errorf(ProgramTooLarge, len(program))
	}

	m := &Machine{
		Mem:  memory.NewMemory(),
		quit: make(chan struct{}),
	}
	m.con = newConsole(output, input, m.quit)

	// the warm boot vector is a HALT. it is never executed because the
	// address is trapped
	m.Mem.Poke(WarmBoot, 0x76)

	// JP bdosBase at the BDOS address and a RET at the base
	m.Mem.Poke(BDOS, 0xc3)
	m.Mem.Poke(BDOS+1, uint8(bdosBase&0xff))
	m.Mem.Poke(BDOS+2, uint8(bdosBase>>8))
	m.Mem.Poke(bdosBase, 0xc9)

	if err := m.Mem.Load(TPA, program); err != nil {
		return nil, err
	}

	m.CPU = cpu.NewCPU(m.Mem)
	m.Reset()

	return m, nil
}

// Reset the CPU so that the program starts again. Memory is not reloaded.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.CPU.PC = TPA

	// a RET from the program returns to the warm boot address
	m.CPU.SP = bdosBase
	m.CPU.SP--
	m.Mem.Poke(m.CPU.SP, WarmBoot>>8)
	m.CPU.SP--
	m.Mem.Poke(m.CPU.SP, WarmBoot&0xff)

	m.Calls = 0
}

// Run the program until it warm boots. A maxCycles value of zero means there
// is no limit to the number of cycles.
func (m *Machine) Run(maxCycles uint64) error {
	for {
		select {
		case <-m.quit:
			return curated.Errorf(Interrupted)
		default:
		}

		switch m.CPU.PC {
		case WarmBoot:
			logger.Logf(logger.Allow, "cpm", "warm boot after %d cycles", m.CPU.Cycles)
			return nil
		case BDOS:
			if err := m.bdos(); err != nil {
				if errors.Is(err, errQuit) {
					return curated.Errorf(Interrupted)
				}
				return err
			}
			continue
		}

		cycles, err := m.CPU.Step()
		if err != nil {
			return curated.Errorf(CPUError, err)
		}

		if m.Trace != nil {
			m.Trace(m.CPU.LastResult, m.CPU)
		}

		if m.Throttle != nil {
			m.Throttle.Consume(cycles)
		}

		if m.CPU.Halted && !m.CPU.IFF1 {
			return curated.Errorf(Halted, m.CPU.PC-1)
		}

		if maxCycles > 0 && m.CPU.Cycles >= maxCycles {
			return curated.Errorf(CycleLimit, m.CPU.Cycles)
		}
	}
}

// Quit causes Run() to return with the Interrupted error before the next
// instruction, including when it is waiting for console input. Once called the
// machine can not be run again. It is safe to call from any goroutine.
func (m *Machine) Quit() {
	m.quitOnce.Do(func() {
		close(m.quit)
	})
}

// String returns the state of the CPU.
func (m *Machine) String() string {
	return fmt.Sprintf("%s calls=%d", m.CPU.String(), m.Calls)
}
