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

package cpm_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher80/cpm"
	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/cpu"
	"github.com/jetsetilly/gopher80/hardware/cpu/execution"
	"github.com/jetsetilly/gopher80/test"
)

func newMachine(t *testing.T, program []uint8, input string) (*cpm.Machine, *test.CappedWriter) {
	t.Helper()

	w, err := test.NewCappedWriter(1024)
	test.DemandSuccess(t, err)

	var m *cpm.Machine
	if input == "" {
		m, err = cpm.NewMachine(program, w, nil)
	} else {
		m, err = cpm.NewMachine(program, w, strings.NewReader(input))
	}
	test.DemandSuccess(t, err)

	return m, w
}

func TestPrintString(t *testing.T) {
	m, w := newMachine(t, []uint8{
		0x0e, 0x09, // LD C,9
		0x11, 0x09, 0x01, // LD DE,0109h
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
		'h', 'e', 'l', 'l', 'o', '$',
	}, "")

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, w.String(), "hello")
	test.ExpectEquality(t, m.Calls, 1)
}

func TestSystemReset(t *testing.T) {
	m, w := newMachine(t, []uint8{
		0x0e, 0x02, // LD C,2
		0x1e, 'A', // LD E,'A'
		0xcd, 0x05, 0x00, // CALL 0005h
		0x0e, 0x00, // LD C,0
		0xcd, 0x05, 0x00, // CALL 0005h
		0x76, // HALT (never reached)
	}, "")

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, w.String(), "A")
	test.ExpectEquality(t, m.Calls, 2)
	test.ExpectEquality(t, m.CPU.PC, uint16(cpm.WarmBoot))
}

func TestVersion(t *testing.T) {
	m, _ := newMachine(t, []uint8{
		0x0e, 0x0c, // LD C,12
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}, "")

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, m.CPU.HL(), uint16(0x0022))
	test.ExpectEquality(t, m.CPU.A, uint8(0x22))
	test.ExpectEquality(t, m.CPU.B, uint8(0x00))
}

func TestMemoryTop(t *testing.T) {
	m, _ := newMachine(t, []uint8{
		0x2a, 0x06, 0x00, // LD HL,(0006h)
		0xc9, // RET
	}, "")

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, m.CPU.HL(), uint16(0xfe00))
}

func TestConsoleInput(t *testing.T) {
	program := []uint8{
		0x0e, 0x01, // LD C,1
		0xcd, 0x05, 0x00, // CALL 0005h
		0x5f,       // LD E,A
		0x0e, 0x02, // LD C,2
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}

	// input is echoed and then written again by function 2
	m, w := newMachine(t, program, "x")
	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, w.String(), "xx")

	// exhausted input reads as the end-of-file character
	m, w = newMachine(t, program, "")
	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, w.String(), "\x1a\x1a")
}

func TestReadConsoleBuffer(t *testing.T) {
	m, w := newMachine(t, []uint8{
		0x0e, 0x0a, // LD C,10
		0x11, 0x00, 0x02, // LD DE,0200h
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}, "abc\ndef\n")
	m.Mem.Poke(0x0200, 8)

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, m.Mem.Peek(0x0201), uint8(3))
	test.ExpectEquality(t, string([]uint8{m.Mem.Peek(0x0202), m.Mem.Peek(0x0203), m.Mem.Peek(0x0204)}), "abc")
	test.ExpectEquality(t, w.String(), "abc\r\n")
}

func TestReadConsoleBufferLimit(t *testing.T) {
	m, _ := newMachine(t, []uint8{
		0x0e, 0x0a, // LD C,10
		0x11, 0x00, 0x02, // LD DE,0200h
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}, "abcdef\n")
	m.Mem.Poke(0x0200, 2)

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, m.Mem.Peek(0x0201), uint8(2))
	test.ExpectEquality(t, m.Mem.Peek(0x0204), uint8(0))
}

func TestUnsupportedFunction(t *testing.T) {
	m, w := newMachine(t, []uint8{
		0x0e, 0x63, // LD C,99
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}, "")

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, w.String(), "")
	test.ExpectEquality(t, m.CPU.HL(), uint16(0))
}

func TestCycleLimit(t *testing.T) {
	m, _ := newMachine(t, []uint8{
		0x18, 0xfe, // JR $
	}, "")

	err := m.Run(1000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpm.CycleLimit))
	test.ExpectSuccess(t, m.CPU.Cycles >= 1000)
}

func TestHalted(t *testing.T) {
	m, _ := newMachine(t, []uint8{
		0xf3, // DI
		0x76, // HALT
	}, "")

	err := m.Run(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpm.Halted))
}

func TestProgramTooLarge(t *testing.T) {
	_, err := cpm.NewMachine(make([]uint8, 0x10000), nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpm.ProgramTooLarge))
}

type countingThrottle struct {
	cycles int
}

func (c *countingThrottle) Consume(cycles int) {
	c.cycles += cycles
}

func TestThrottleAndTrace(t *testing.T) {
	m, _ := newMachine(t, []uint8{
		0x00, // NOP
		0x00, // NOP
		0xc9, // RET
	}, "")

	var throttle countingThrottle
	m.Throttle = &throttle

	var instructions int
	m.Trace = func(r execution.Result, _ *cpu.CPU) {
		test.ExpectSuccess(t, r.Final)
		instructions++
	}

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, instructions, 3)
	test.ExpectEquality(t, throttle.cycles, 4+4+10)
	test.ExpectEquality(t, uint64(throttle.cycles), m.CPU.Cycles)
}

func TestReset(t *testing.T) {
	m, w := newMachine(t, []uint8{
		0x0e, 0x02, // LD C,2
		0x1e, '!', // LD E,'!'
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}, "")

	test.ExpectSuccess(t, m.Run(0))
	m.Reset()
	test.ExpectEquality(t, m.CPU.PC, uint16(cpm.TPA))
	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, w.String(), "!!")
	test.ExpectEquality(t, m.Calls, 1)
}

func TestQuit(t *testing.T) {
	// the pipe is never written to so console input blocks forever
	r, w := io.Pipe()
	defer w.Close()

	m, err := cpm.NewMachine([]uint8{
		0x0e, 0x01, // LD C,1
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}, nil, r)
	test.DemandSuccess(t, err)

	time.AfterFunc(10*time.Millisecond, m.Quit)

	err = m.Run(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpm.Interrupted))

	// quitting is permanent
	m.Quit()
	test.ExpectSuccess(t, curated.Is(m.Run(0), cpm.Interrupted))
}

func TestReadConsoleBufferEditing(t *testing.T) {
	m, w := newMachine(t, []uint8{
		0x0e, 0x0a, // LD C,10
		0x11, 0x00, 0x02, // LD DE,0200h
		0xcd, 0x05, 0x00, // CALL 0005h
		0xc9, // RET
	}, "\x08abx\x7fc\r")
	m.Mem.Poke(0x0200, 8)

	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, m.Mem.Peek(0x0201), uint8(3))
	test.ExpectEquality(t, string([]uint8{m.Mem.Peek(0x0202), m.Mem.Peek(0x0203), m.Mem.Peek(0x0204)}), "abc")
	test.ExpectEquality(t, w.String(), "abx\x08 \x08c\r\n")
}

func TestReadConsoleBufferInterrupt(t *testing.T) {
	m, w := newMachine(t, []uint8{
		0x0e, 0x0a, // LD C,10
		0x11, 0x00, 0x02, // LD DE,0200h
		0xcd, 0x05, 0x00, // CALL 0005h
		0x76, // HALT (not reached)
	}, "\x03")
	m.Mem.Poke(0x0200, 8)

	// ctrl-c at the start of a line is a warm boot
	test.ExpectSuccess(t, m.Run(0))
	test.ExpectEquality(t, w.String(), "^C\r\n")
	test.ExpectEquality(t, m.CPU.PC, uint16(cpm.WarmBoot))
}
