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

package instructions

// Fields of an opcode byte.
type Fields struct {
	X uint8
	Y uint8
	Z uint8
	P uint8
	Q uint8
}

// Decode splits an opcode into its fields.
func Decode(opcode uint8) Fields {
	return Fields{
		X: opcode >> 6,
		Y: (opcode >> 3) & 0x07,
		Z: opcode & 0x07,
		P: (opcode >> 4) & 0x03,
		Q: (opcode >> 3) & 0x01,
	}
}
