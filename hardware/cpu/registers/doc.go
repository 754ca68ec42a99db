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

// Package registers implements the register file of the Z80. The Registers
// type holds the complete architectural state of the processor: the main and
// alternate register banks, the index registers, the stack pointer and
// program counter, the interrupt and refresh registers and the interrupt
// control state.
//
// The flags register is represented by the Flags type. Individual flags are
// identified by their mask value:
//
//	r.F.Set(registers.Carry, true)
//	if r.F.Has(registers.Zero) {
//		...
//	}
//
// The active index prefix is also held by the Registers type. Methods that
// refer to the HL register pair or to the H and L registers (Index(), Reg8(),
// etc.) are redirected to IX or IY, or to the high and low halves of those
// registers, when an index prefix is active. The Get8() and Set8() functions
// ignore the prefix and always refer to the named register.
package registers
