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

// Package cpubus defines the interfaces through which the CPU accesses the
// rest of the system.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are always in the range 0x0000 to 0xffff. The implementation
// owns any banking or mapping policy.
//
// An error returned by Read() or Write() is returned unchanged by the CPU's
// Step() function.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Ports defines the operations for the I/O port space. The full 16 bit port
// address is supplied. For the IN A,(n) and OUT (n),A instructions the high
// byte is the value of the accumulator. For other I/O instructions the port
// address is the value of the BC register pair.
//
// A Memory implementation that also implements Ports will be used by the CPU
// for I/O instructions.
type Ports interface {
	In(port uint16) (uint8, error)
	Out(port uint16, data uint8) error
}

// AddressError is returned (possibly wrapped) by Memory implementations for
// addresses that cannot be accessed.
var AddressError = errors.New("inaccessible address")
