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

// Package addressing resolves effective addresses for the Z80's indexed,
// indirect and relative addressing modes. All arithmetic wraps around the 16
// bit address space.
package addressing

// Displacement interprets an operand byte as a signed displacement.
func Displacement(v uint8) int8 {
	return int8(v)
}

// ResolveIndexed returns the effective address of base plus the sign
// extended displacement. The result wraps modulo 0x10000.
func ResolveIndexed(base uint16, d int8) uint16 {
	return base + uint16(int16(d))
}

// Indirect returns the effective address for indirect addressing through a
// register pair. The pair's value is the address.
func Indirect(pair uint16) uint16 {
	return pair
}

// Relative returns the destination of a relative jump. The pc argument should
// be the address of the byte following the jump instruction.
func Relative(pc uint16, d int8) uint16 {
	return ResolveIndexed(pc, d)
}
