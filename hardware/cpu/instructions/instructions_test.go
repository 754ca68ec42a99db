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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/test"
)

func TestDecode(t *testing.T) {
	// LD B,(HL)
	f := instructions.Decode(0x46)
	test.ExpectEquality(t, f, instructions.Fields{X: 1, Y: 0, Z: 6, P: 0, Q: 0})

	// POP AF
	f = instructions.Decode(0xf1)
	test.ExpectEquality(t, f, instructions.Fields{X: 3, Y: 6, Z: 1, P: 3, Q: 0})

	// CP n
	f = instructions.Decode(0xfe)
	test.ExpectEquality(t, instructions.Operation(f.Y), instructions.CP)

	// SRA (IX+d) is DD CB d 2E
	f = instructions.Decode(0x2e)
	test.ExpectEquality(t, instructions.BitOperation(f.X), instructions.Rotate)
	test.ExpectEquality(t, instructions.Rotation(f.Y), instructions.SRA)
}

func TestTables(t *testing.T) {
	test.ExpectEquality(t, int(instructions.NumTables), 7)
	test.ExpectEquality(t, instructions.DDCB.String(), "DDCB")
	test.ExpectEquality(t, len(instructions.FDCB.Prefix()), 2)
	test.ExpectEquality(t, len(instructions.Unprefixed.Prefix()), 0)
	test.ExpectSuccess(t, instructions.FD.Indexed())
	test.ExpectFailure(t, instructions.ED.Indexed())
}
