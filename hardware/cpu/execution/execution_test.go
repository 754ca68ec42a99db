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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/cpu/execution"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/test"
)

func TestNotFinal(t *testing.T) {
	var r execution.Result
	err := r.IsValid()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "cpu: execution not finalised"))
	test.ExpectEquality(t, r.String(), "not finalised")
}

func TestValidResults(t *testing.T) {
	cases := []execution.Result{
		// NOP
		{Table: instructions.Unprefixed, Opcode: 0x00, ByteCount: 1, Cycles: 4, Final: true},
		// LD (nn),A
		{Table: instructions.Unprefixed, Opcode: 0x32, ByteCount: 3, Cycles: 13, Final: true},
		// BIT 0,(HL)
		{Table: instructions.CB, Opcode: 0x46, ByteCount: 2, Cycles: 12, Final: true},
		// LD (nn),BC
		{Table: instructions.ED, Opcode: 0x43, ByteCount: 4, Cycles: 20, Final: true},
		// LD (IX+d),n
		{Table: instructions.DD, Opcode: 0x36, ByteCount: 4, Cycles: 19, HasDisplacement: true, Final: true},
		// BIT 0,(IX+d)
		{Table: instructions.DDCB, Opcode: 0x46, ByteCount: 4, Cycles: 20, HasDisplacement: true, Final: true},
		// SRA (IY+d)
		{Table: instructions.FDCB, Opcode: 0x2e, ByteCount: 4, Cycles: 23, HasDisplacement: true, Final: true},
		// DD DD LD IX,nn
		{Table: instructions.DD, Opcode: 0x21, ByteCount: 5, Cycles: 18, RedundantPrefixes: 1, Final: true},
		// interrupt acknowledge
		{Interrupt: true, Cycles: 13, Final: true},
	}

	for i, c := range cases {
		test.ExpectSuccess(t, c.IsValid(), i)
	}
}

func TestInvalidResults(t *testing.T) {
	cases := []execution.Result{
		// too few cycles
		{Table: instructions.Unprefixed, Opcode: 0x00, ByteCount: 1, Cycles: 3, Final: true},
		// too many bytes
		{Table: instructions.Unprefixed, Opcode: 0x00, ByteCount: 4, Cycles: 4, Final: true},
		// wrong number of cycles for CB
		{Table: instructions.CB, Opcode: 0x46, ByteCount: 2, Cycles: 20, Final: true},
		// BIT in DDCB is 20 cycles
		{Table: instructions.DDCB, Opcode: 0x46, ByteCount: 4, Cycles: 23, HasDisplacement: true, Final: true},
		// DDCB without displacement
		{Table: instructions.DDCB, Opcode: 0x06, ByteCount: 4, Cycles: 23, Final: true},
	}

	for i, c := range cases {
		test.ExpectFailure(t, c.IsValid(), i)
	}
}

func TestString(t *testing.T) {
	r := execution.Result{
		Address:         0x0100,
		Table:           instructions.DDCB,
		Opcode:          0x46,
		Displacement:    -2,
		HasDisplacement: true,
		ByteCount:       4,
		Cycles:          20,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0100  dd cb -2 46  (4 bytes)  [20]")

	r.Reset()
	test.ExpectEquality(t, r.Final, false)
}
