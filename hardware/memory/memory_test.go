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

package memory_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/memory"
	"github.com/jetsetilly/gopher80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher80/test"
)

func TestInterfaces(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandImplements(t, mem, (cpubus.Memory)(nil))
	test.DemandImplements(t, mem, (cpubus.Ports)(nil))
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Write(0x0000, 0x01))
	test.ExpectSuccess(t, mem.Write(0xffff, 0xff))

	v, err := mem.Read(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x01))

	v, err = mem.Read(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))
	test.ExpectEquality(t, mem.Peek(0xffff), uint8(0xff))
}

func TestReadOnly(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.Load(0x0000, []uint8{0xc3, 0x00, 0x01}))
	test.DemandSuccess(t, mem.SetAccess(0x0000, 0x00ff, memory.ReadOnly))

	// writes are ignored without an error
	test.ExpectSuccess(t, mem.Write(0x0000, 0x00))
	v, _ := mem.Read(0x0000)
	test.ExpectEquality(t, v, uint8(0xc3))

	// outside of the read-only area
	test.ExpectSuccess(t, mem.Write(0x0100, 0x76))
	test.ExpectEquality(t, mem.Peek(0x0100), uint8(0x76))

	// poke ignores access type
	mem.Poke(0x0000, 0x00)
	test.ExpectEquality(t, mem.Peek(0x0000), uint8(0x00))
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.SetAccess(0x8000, 0xffff, memory.Unmapped))
	test.ExpectEquality(t, mem.Access(0x7fff), memory.ReadWrite)
	test.ExpectEquality(t, mem.Access(0x8000), memory.Unmapped)

	_, err := mem.Read(0x8000)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))

	err = mem.Write(0xffff, 0x00)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))

	// later areas take precedence
	test.DemandSuccess(t, mem.SetAccess(0x8000, 0x80ff, memory.ReadWrite))
	_, err = mem.Read(0x8000)
	test.ExpectSuccess(t, err)

	mem.Reset()
	_, err = mem.Read(0xffff)
	test.ExpectSuccess(t, err)
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewMemory()
	mem.Poke(0xc000, 0x12)
	test.DemandSuccess(t, mem.SetAccess(0xc000, 0xffff, memory.OpenBus))
	test.ExpectEquality(t, mem.Access(0xc000).String(), "open bus")

	v, err := mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))

	// writes are dropped without error
	test.ExpectSuccess(t, mem.Write(0xc000, 0x34))
	test.ExpectEquality(t, mem.Peek(0xc000), uint8(0x12))

	// memory below the area is unaffected
	test.ExpectSuccess(t, mem.Write(0xbfff, 0x34))
	v, err = mem.Read(0xbfff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x34))
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectSuccess(t, mem.Load(0xfffe, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, mem.Peek(0xfffe), uint8(0x01))
	test.ExpectEquality(t, mem.Peek(0xffff), uint8(0x02))

	err := mem.Load(0xffff, []uint8{0x01, 0x02})
	test.ExpectSuccess(t, curated.Is(err, memory.LoadOverrun))

	err = mem.SetAccess(0x1000, 0x0fff, memory.ReadOnly)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidRange))
}

func TestPorts(t *testing.T) {
	mem := memory.NewMemory()

	var written uint8
	var writtenPort uint16
	mem.Ports.Attach(0x10, func(port uint16) uint8 {
		return uint8(port >> 8)
	}, func(port uint16, data uint8) {
		writtenPort = port
		written = data
	})

	// devices are attached to the low byte of the port address
	v, err := mem.In(0xab10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xab))

	test.ExpectSuccess(t, mem.Out(0x1210, 0x99))
	test.ExpectEquality(t, written, uint8(0x99))
	test.ExpectEquality(t, writtenPort, uint16(0x1210))

	// unattached ports read as 0xff
	v, err = mem.In(0x0011)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))
	test.ExpectSuccess(t, mem.Out(0x0011, 0x00))

	mem.Ports.Detach(0x10)
	v, _ = mem.In(0xab10)
	test.ExpectEquality(t, v, uint8(0xff))
}
