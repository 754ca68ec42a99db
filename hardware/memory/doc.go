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

// Package memory implements a flat 64K memory system for the Z80, suitable for
// running test programs and CP/M style binaries.
//
//	    CPU ---- cpu bus ---- MEMORY ---- ports ---- DEVICES
//
// The Memory type implements both the cpubus.Memory and the cpubus.Ports
// interfaces. Areas of memory can be made read-only, in which case writes are
// ignored and logged. Areas with no memory behind them are either open bus,
// where reads return 0xff and writes are ignored, or unmapped, where any
// access results in an error that wraps cpubus.AddressError. Unmapped areas
// are for catching programs that stray outside the memory they should use.
//
// The Peek() and Poke() functions access memory without regard to the
// access type of an address. They are intended for use by
// program loaders and by tests.
package memory
