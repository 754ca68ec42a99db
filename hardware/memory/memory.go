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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher80/logger"
)

// Sentinel error patterns.
const (
	LoadOverrun  = "memory: load overrun (%d bytes at %#04x)"
	InvalidRange = "memory: invalid range (%#04x to %#04x)"
)

// Access describes how an area of memory responds to the CPU.
type Access int

// List of valid Access values.
const (
	ReadWrite Access = iota
	ReadOnly

	// nothing responds to the address. reads return 0xff and writes are
	// ignored
	OpenBus

	// the address must never be accessed. any access is an error wrapping
	// cpubus.AddressError. this models a host that has broken its contract
	// with the CPU rather than real hardware
	Unmapped
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "RAM"
	case ReadOnly:
		return "ROM"
	case OpenBus:
		return "open bus"
	case Unmapped:
		return "unmapped"
	}
	return "unknown access"
}

// area is a range of memory with an access type other than ReadWrite.
type area struct {
	origin uint16
	memtop uint16
	access Access
}

// Memory is a flat 64K address space with an I/O port space.
type Memory struct {
	data  [0x10000]uint8
	areas []area

	// Ports is the I/O port space of the system
	Ports *Ports
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		Ports: NewPorts(),
	}
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString("0000-ffff RAM")
	for _, a := range mem.areas {
		s.WriteString(fmt.Sprintf("\n%04x-%04x %s", a.origin, a.memtop, a.access))
	}
	return s.String()
}

// SetAccess changes how the CPU sees the range of addresses from origin to
// memtop inclusive. Later calls take precedence over earlier calls.
func (mem *Memory) SetAccess(origin uint16, memtop uint16, access Access) error {
	if memtop < origin {
		return curated.Errorf(InvalidRange, origin, memtop)
	}
	mem.areas = append(mem.areas, area{origin: origin, memtop: memtop, access: access})
	return nil
}

// Access returns the access type for the address.
func (mem *Memory) Access(address uint16) Access {
	for i := len(mem.areas) - 1; i >= 0; i-- {
		a := mem.areas[i]
		if address >= a.origin && address <= a.memtop {
			return a.access
		}
	}
	return ReadWrite
}

// Reset clears memory and removes all access restrictions. Attached ports are
// not affected.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	mem.areas = mem.areas[:0]
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if len(mem.areas) > 0 {
		switch mem.Access(address) {
		case Unmapped:
			return 0, fmt.Errorf("memory: read %#04x: %w", address, cpubus.AddressError)
		case OpenBus:
			return 0xff, nil
		}
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if len(mem.areas) > 0 {
		switch mem.Access(address) {
		case Unmapped:
			return fmt.Errorf("memory: write %#04x: %w", address, cpubus.AddressError)
		case ReadOnly:
			logger.Logf(logger.Allow, "memory", "write to read-only address %#04x ignored", address)
			return nil
		case OpenBus:
			return nil
		}
	}
	mem.data[address] = data
	return nil
}

// In implements the cpubus.Ports interface.
func (mem *Memory) In(port uint16) (uint8, error) {
	return mem.Ports.In(port)
}

// Out implements the cpubus.Ports interface.
func (mem *Memory) Out(port uint16, data uint8) error {
	return mem.Ports.Out(port, data)
}

// Peek returns the value at address regardless of its access type.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke sets the value at address regardless of its access type.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Load copies data into memory starting at origin, regardless of the access
// type of the addresses. It is an error for the data to extend beyond the top
// of memory.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.data) {
		return curated.Errorf(LoadOverrun, len(data), origin)
	}
	copy(mem.data[origin:], data)
	return nil
}
