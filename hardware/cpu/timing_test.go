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
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher80/hardware/cpu"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/test"
)

type timing struct {
	code   []uint8
	setup  func(mc *cpu.CPU)
	cycles int
	bytes  int
	table  instructions.Table
}

var timings = []timing{
	{code: []uint8{0x00}, cycles: 4, bytes: 1},
	{code: []uint8{0x01, 0x34, 0x12}, cycles: 10, bytes: 3},
	{code: []uint8{0x02}, cycles: 7, bytes: 1},
	{code: []uint8{0x03}, cycles: 6, bytes: 1},
	{code: []uint8{0x09}, cycles: 11, bytes: 1},
	{code: []uint8{0x22, 0x00, 0x80}, cycles: 16, bytes: 3},
	{code: []uint8{0x32, 0x00, 0x80}, cycles: 13, bytes: 3},
	{code: []uint8{0x34}, cycles: 11, bytes: 1, setup: func(mc *cpu.CPU) { mc.SetHL(0x8000) }},
	{code: []uint8{0x36, 0x10}, cycles: 10, bytes: 2, setup: func(mc *cpu.CPU) { mc.SetHL(0x8000) }},
	{code: []uint8{0x46}, cycles: 7, bytes: 1},
	{code: []uint8{0x41}, cycles: 4, bytes: 1},
	{code: []uint8{0x86}, cycles: 7, bytes: 1},
	{code: []uint8{0xc3, 0x00, 0x10}, cycles: 10, bytes: 3},
	{code: []uint8{0xc5}, cycles: 11, bytes: 1},
	{code: []uint8{0xc1}, cycles: 10, bytes: 1},
	{code: []uint8{0xcd, 0x00, 0x10}, cycles: 17, bytes: 3},
	{code: []uint8{0xd3, 0x10}, cycles: 11, bytes: 2},
	{code: []uint8{0xdb, 0x10}, cycles: 11, bytes: 2},
	{code: []uint8{0xe3}, cycles: 19, bytes: 1, setup: func(mc *cpu.CPU) { mc.SP = 0x8000 }},
	{code: []uint8{0xe9}, cycles: 4, bytes: 1},
	{code: []uint8{0xf9}, cycles: 6, bytes: 1},
	{code: []uint8{0xfe, 0x10}, cycles: 7, bytes: 2},

	{code: []uint8{0xcb, 0x00}, cycles: 8, bytes: 2, table: instructions.CB},
	{code: []uint8{0xcb, 0x06}, cycles: 15, bytes: 2, table: instructions.CB},
	{code: []uint8{0xcb, 0x46}, cycles: 12, bytes: 2, table: instructions.CB},
	{code: []uint8{0xcb, 0xc6}, cycles: 15, bytes: 2, table: instructions.CB},
	{code: []uint8{0xcb, 0xff}, cycles: 8, bytes: 2, table: instructions.CB},

	{code: []uint8{0xed, 0x40}, cycles: 12, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x41}, cycles: 12, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x42}, cycles: 15, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x43, 0x00, 0x80}, cycles: 20, bytes: 4, table: instructions.ED},
	{code: []uint8{0xed, 0x44}, cycles: 8, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x45}, cycles: 14, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x46}, cycles: 8, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x47}, cycles: 9, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x57}, cycles: 9, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x67}, cycles: 18, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x77}, cycles: 8, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0xa0}, cycles: 16, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0xa1}, cycles: 16, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0x00}, cycles: 8, bytes: 2, table: instructions.ED},
	{code: []uint8{0xed, 0xff}, cycles: 8, bytes: 2, table: instructions.ED},

	{code: []uint8{0xdd, 0x00}, cycles: 8, bytes: 2, table: instructions.DD},
	{code: []uint8{0xdd, 0x09}, cycles: 15, bytes: 2, table: instructions.DD},
	{code: []uint8{0xdd, 0x21, 0x00, 0x80}, cycles: 14, bytes: 4, table: instructions.DD},
	{code: []uint8{0xdd, 0x23}, cycles: 10, bytes: 2, table: instructions.DD},
	{code: []uint8{0xdd, 0x24}, cycles: 8, bytes: 2, table: instructions.DD},
	{code: []uint8{0xdd, 0x34, 0x05}, cycles: 23, bytes: 3, table: instructions.DD},
	{code: []uint8{0xdd, 0x36, 0x05, 0x10}, cycles: 19, bytes: 4, table: instructions.DD},
	{code: []uint8{0xdd, 0x46, 0x05}, cycles: 19, bytes: 3, table: instructions.DD},
	{code: []uint8{0xdd, 0x70, 0x05}, cycles: 19, bytes: 3, table: instructions.DD},
	{code: []uint8{0xdd, 0x86, 0x05}, cycles: 19, bytes: 3, table: instructions.DD},
	{code: []uint8{0xdd, 0xe1}, cycles: 14, bytes: 2, table: instructions.DD},
	{code: []uint8{0xdd, 0xe3}, cycles: 23, bytes: 2, table: instructions.DD, setup: func(mc *cpu.CPU) { mc.SP = 0x8000 }},
	{code: []uint8{0xdd, 0xe5}, cycles: 15, bytes: 2, table: instructions.DD},
	{code: []uint8{0xdd, 0xe9}, cycles: 8, bytes: 2, table: instructions.DD},
	{code: []uint8{0xfd, 0xf9}, cycles: 10, bytes: 2, table: instructions.FD},

	{code: []uint8{0xdd, 0xcb, 0x05, 0x06}, cycles: 23, bytes: 4, table: instructions.DDCB},
	{code: []uint8{0xdd, 0xcb, 0x05, 0x46}, cycles: 20, bytes: 4, table: instructions.DDCB},
	{code: []uint8{0xdd, 0xcb, 0x05, 0x80}, cycles: 23, bytes: 4, table: instructions.DDCB},
	{code: []uint8{0xfd, 0xcb, 0x05, 0xfe}, cycles: 23, bytes: 4, table: instructions.FDCB},
}

func TestTimings(t *testing.T) {
	mc, mem := newCPU()

	for _, tm := range timings {
		mem.Clear()
		mc.Reset()
		mc.SP = 0x9000
		mc.IX = 0x8000
		mc.IY = 0x8000
		if tm.setup != nil {
			tm.setup(mc)
		}
		mem.putInstructions(0x0000, tm.code...)

		tag := fmt.Sprintf("% 02x", tm.code)
		test.ExpectEquality(t, step(t, mc), tm.cycles, tag)
		test.ExpectEquality(t, mc.LastResult.ByteCount, tm.bytes, tag)
		test.ExpectEquality(t, mc.LastResult.Table, tm.table, tag)

		// the opcode of a DDCB or FDCB instruction follows the displacement
		opcode := tm.code[len(tm.table.Prefix())]
		if tm.table == instructions.DDCB || tm.table == instructions.FDCB {
			opcode = tm.code[3]
		}
		test.ExpectEquality(t, mc.LastResult.Opcode, opcode, tag)
	}
}

// every opcode in every table must execute and produce a valid result.
func TestAllOpcodes(t *testing.T) {
	mc, mem := newCPU()

	for tb := instructions.Table(0); tb < instructions.NumTables; tb++ {
		for op := range 256 {
			mem.Clear()
			mc.Reset()
			mc.SP = 0x9000

			code := tb.Prefix()
			if tb == instructions.DDCB || tb == instructions.FDCB {
				code = append(code, 0x01)
			}
			code = append(code, uint8(op), 0x00, 0x00)
			mem.putInstructions(0x0000, code...)

			_, err := mc.Step()
			test.ExpectSuccess(t, err, tb, op)
			test.ExpectSuccess(t, mc.LastResult.IsValid(), tb, op)
		}
	}
}
