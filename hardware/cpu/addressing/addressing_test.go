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

package addressing_test

import (
	"testing"

	"github.com/jetsetilly/gopher80/hardware/cpu/addressing"
	"github.com/jetsetilly/gopher80/test"
)

func TestResolveIndexed(t *testing.T) {
	test.ExpectEquality(t, addressing.ResolveIndexed(0x2000, 0x10), uint16(0x2010))
	test.ExpectEquality(t, addressing.ResolveIndexed(0x2000, -0x10), uint16(0x1ff0))
	test.ExpectEquality(t, addressing.ResolveIndexed(0x2000, 127), uint16(0x207f))
	test.ExpectEquality(t, addressing.ResolveIndexed(0x2000, -128), uint16(0x1f80))
}

func TestWraparound(t *testing.T) {
	test.ExpectEquality(t, addressing.ResolveIndexed(0xffff, 1), uint16(0x0000))
	test.ExpectEquality(t, addressing.ResolveIndexed(0x0000, -1), uint16(0xffff))
	test.ExpectEquality(t, addressing.ResolveIndexed(0xff80, 127), uint16(0xffff))
	test.ExpectEquality(t, addressing.ResolveIndexed(0xff81, 127), uint16(0x0000))
	test.ExpectEquality(t, addressing.ResolveIndexed(0x007f, -128), uint16(0xffff))
}

func TestAllDisplacements(t *testing.T) {
	for i := 0; i < 256; i++ {
		d := addressing.Displacement(uint8(i))
		a := addressing.ResolveIndexed(0x8000, d)
		test.ExpectEquality(t, int(a)-0x8000, int(d), i)
	}
}

func TestIndirect(t *testing.T) {
	test.ExpectEquality(t, addressing.Indirect(0x1234), uint16(0x1234))
	test.ExpectEquality(t, addressing.Relative(0x0002, -2), uint16(0x0000))
	test.ExpectEquality(t, addressing.Relative(0xfffe, 4), uint16(0x0002))
}
