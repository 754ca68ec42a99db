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

// Package cpu emulates the Zilog Z80. The emulation is instruction accurate
// rather than cycle accurate, meaning that each call to Step() executes one
// complete instruction and returns the number of T-states that instruction
// took on real hardware.
//
// Instructions are decoded through a set of dispatch tables, one for each
// prefix context (unprefixed, CB, ED, DD, FD, DDCB and FDCB). Every table has
// a handler for every opcode and the tables are built and validated once when
// the package is initialised. Prefix bytes are handled by entries in the
// tables that chain to the next table.
//
// The documented and the undocumented behaviour of the Z80 is emulated. This
// includes the undocumented X5 and X3 flags, the undocumented IXH, IXL, IYH
// and IYL registers, the SLL instruction and the register copying variants of
// the DDCB and FDCB instructions.
//
// The CPU accesses memory through the cpubus.Memory interface. If the Memory
// implementation also implements cpubus.Ports then it is used for the I/O
// instructions. An error from the bus is returned by Step() unchanged. Once an
// error has occurred, further reads in the same instruction return 0xff and
// further writes are ignored.
//
// Interrupts are requested by the caller between instructions with the
// Interrupt() and NonMaskableInterrupt() functions.
package cpu
