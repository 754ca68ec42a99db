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

package registers

// Target identifies one of the 8-bit registers as encoded in the low three
// bits of an opcode. The value 6 in that encoding refers to memory and not to
// a register, and is represented by MemoryOnly.
type Target int

// List of valid Target values. The order matches the encoding used in Z80
// opcodes.
const (
	TargetB Target = iota
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
	MemoryOnly
	TargetA
)

// DecodeTarget returns the Target encoded in the low three bits of opcode.
func DecodeTarget(opcode uint8) Target {
	return Target(opcode & 0x07)
}

func (t Target) String() string {
	switch t {
	case TargetB:
		return "B"
	case TargetC:
		return "C"
	case TargetD:
		return "D"
	case TargetE:
		return "E"
	case TargetH:
		return "H"
	case TargetL:
		return "L"
	case MemoryOnly:
		return "(HL)"
	case TargetA:
		return "A"
	}
	return "?"
}
