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
	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/logger"
	"github.com/jetsetilly/gopher80/terminal/easyterm"
)

// BDOS function numbers.
const (
	fnSystemReset       = 0
	fnConsoleInput      = 1
	fnConsoleOutput     = 2
	fnDirectConsoleIO   = 6
	fnPrintString       = 9
	fnReadConsoleBuffer = 10
	fnConsoleStatus     = 11
	fnVersion           = 12
)

// the version number returned by function 12. CP/M 2.2
const version = 0x0022

const carriageReturn = easyterm.KeyCarriageReturn

// bdos services the function in register C and then returns to the caller as
// though the BDOS had executed a RET.
func (m *Machine) bdos() error {
	mc := m.CPU
	m.Calls++

	var ret uint16

	switch mc.C {
	case fnSystemReset:
		mc.PC = WarmBoot
		return nil

	case fnConsoleInput:
		b, err := m.con.read()
		if err != nil {
			return err
		}
		if err := m.con.write(b); err != nil {
			return curated.Errorf(ConsoleError, err)
		}
		ret = uint16(b)

	case fnConsoleOutput:
		if err := m.con.write(mc.E); err != nil {
			return curated.Errorf(ConsoleError, err)
		}

	case fnDirectConsoleIO:
		switch mc.E {
		case 0xff:
			if m.con.ready() {
				b, err := m.con.read()
				if err != nil {
					return err
				}
				ret = uint16(b)
			}
		case 0xfe:
			if m.con.ready() {
				ret = 0xff
			}
		default:
			if err := m.con.write(mc.E); err != nil {
				return curated.Errorf(ConsoleError, err)
			}
		}

	case fnPrintString:
		var s []uint8
		for a := mc.DE(); ; a++ {
			b := m.Mem.Peek(a)
			if b == '$' {
				break
			}
			s = append(s, b)

			// a string without a terminator would wrap around memory forever
			if len(s) > 0xffff {
				logger.Logf(logger.Allow, "cpm", "unterminated string at %#04x", mc.DE())
				break
			}
		}
		if err := m.con.write(s...); err != nil {
			return curated.Errorf(ConsoleError, err)
		}

	case fnReadConsoleBuffer:
		warmBoot, err := m.readConsoleBuffer()
		if err != nil {
			return err
		}
		if warmBoot {
			mc.PC = WarmBoot
			return nil
		}

	case fnConsoleStatus:
		if m.con.ready() {
			ret = 0xff
		}

	case fnVersion:
		ret = version

	default:
		logger.Logf(logger.Allow, "cpm", "unsupported BDOS function %d", mc.C)
	}

	// results are returned in HL with A and B as copies of L and H
	mc.SetHL(ret)
	mc.A = uint8(ret)
	mc.B = uint8(ret >> 8)

	// return to caller
	lo := m.Mem.Peek(mc.SP)
	hi := m.Mem.Peek(mc.SP + 1)
	mc.SP += 2
	mc.PC = uint16(hi)<<8 | uint16(lo)

	return nil
}

// readConsoleBuffer reads a line into the buffer at DE. The first byte of the
// buffer is the maximum number of characters to read and the second byte is
// set to the number of characters read. The line is echoed to the console and
// can be edited with backspace or delete.
//
// Returns true if ctrl-c was typed at the start of the line, which is a
// request for a warm boot.
func (m *Machine) readConsoleBuffer() (bool, error) {
	mc := m.CPU
	buf := mc.DE()
	size := m.Mem.Peek(buf)

	var n uint8
line:
	for n < size {
		b, err := m.con.read()
		if err != nil {
			return false, err
		}

		var echo []uint8

		switch b {
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed, endOfInput:
			break line

		case easyterm.KeyInterrupt:
			if n == 0 {
				if err := m.con.write('^', 'C', carriageReturn, '\n'); err != nil {
					return false, curated.Errorf(ConsoleError, err)
				}
				return true, nil
			}
			continue

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if n == 0 {
				continue
			}
			n--
			echo = []uint8{easyterm.KeyBackspace, ' ', easyterm.KeyBackspace}

		default:
			m.Mem.Poke(buf+2+uint16(n), b)
			n++
			echo = []uint8{b}
		}

		if err := m.con.write(echo...); err != nil {
			return false, curated.Errorf(ConsoleError, err)
		}
	}
	m.Mem.Poke(buf+1, n)

	if err := m.con.write(carriageReturn, '\n'); err != nil {
		return false, curated.Errorf(ConsoleError, err)
	}

	return false, nil
}
