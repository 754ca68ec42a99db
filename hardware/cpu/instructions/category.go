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

// Condition is the flag test performed by conditional jumps, calls and
// returns. Selected by the y field of the opcode.
type Condition uint8

// List of valid Condition values.
const (
	NZ Condition = iota
	Z
	NC
	C
	PO
	PE
	P
	M
)

func (c Condition) String() string {
	switch c {
	case NZ:
		return "NZ"
	case Z:
		return "Z"
	case NC:
		return "NC"
	case C:
		return "C"
	case PO:
		return "PO"
	case PE:
		return "PE"
	case P:
		return "P"
	case M:
		return "M"
	}
	return "unknown condition"
}

// Operation is the arithmetic or logical operation performed on the
// accumulator. Selected by the y field of the opcode.
type Operation uint8

// List of valid Operation values.
const (
	ADD Operation = iota
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
)

func (o Operation) String() string {
	switch o {
	case ADD:
		return "ADD"
	case ADC:
		return "ADC"
	case SUB:
		return "SUB"
	case SBC:
		return "SBC"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case OR:
		return "OR"
	case CP:
		return "CP"
	}
	return "unknown operation"
}

// Rotation is the rotate or shift performed by a CB prefixed instruction.
// Selected by the y field of the opcode when the x field is zero.
type Rotation uint8

// List of valid Rotation values. SLL is undocumented.
const (
	RLC Rotation = iota
	RRC
	RL
	RR
	SLA
	SRA
	SLL
	SRL
)

func (r Rotation) String() string {
	switch r {
	case RLC:
		return "RLC"
	case RRC:
		return "RRC"
	case RL:
		return "RL"
	case RR:
		return "RR"
	case SLA:
		return "SLA"
	case SRA:
		return "SRA"
	case SLL:
		return "SLL"
	case SRL:
		return "SRL"
	}
	return "unknown rotation"
}

// BitOperation is the bit instruction performed by a CB prefixed instruction.
// Selected by the x field of the opcode.
type BitOperation uint8

// List of valid BitOperation values. Rotate means the instruction is a
// rotation or shift and the y field selects a Rotation.
const (
	Rotate BitOperation = iota
	BIT
	RES
	SET
)

func (b BitOperation) String() string {
	switch b {
	case Rotate:
		return "rotate"
	case BIT:
		return "BIT"
	case RES:
		return "RES"
	case SET:
		return "SET"
	}
	return "unknown bit operation"
}
