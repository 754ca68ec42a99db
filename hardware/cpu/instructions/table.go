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

// Package instructions defines the vocabulary used to decode Z80 opcodes: the
// prefix context (Table) that an opcode belongs to, the fields that make up
// an opcode byte and the categories of operation that those fields select.
//
// A Z80 opcode byte is decoded as the fields:
//
//	  7 6 5 4 3 2 1 0
//	 | x | y   | z   |
//	     | p |q|
//
// The meaning of each field depends on the Table.
package instructions

// Table identifies the prefix context in which an opcode is decoded.
type Table int

// List of valid Table values.
const (
	Unprefixed Table = iota
	CB
	ED
	DD
	FD
	DDCB
	FDCB

	// the number of tables. not a valid Table value
	NumTables
)

func (t Table) String() string {
	switch t {
	case Unprefixed:
		return "unprefixed"
	case CB:
		return "CB"
	case ED:
		return "ED"
	case DD:
		return "DD"
	case FD:
		return "FD"
	case DDCB:
		return "DDCB"
	case FDCB:
		return "FDCB"
	}
	return "unknown table"
}

// Prefix returns the byte sequence that selects the table.
func (t Table) Prefix() []uint8 {
	switch t {
	case CB:
		return []uint8{0xcb}
	case ED:
		return []uint8{0xed}
	case DD:
		return []uint8{0xdd}
	case FD:
		return []uint8{0xfd}
	case DDCB:
		return []uint8{0xdd, 0xcb}
	case FDCB:
		return []uint8{0xfd, 0xcb}
	}
	return nil
}

// Indexed returns true if the table is one of the index register tables.
func (t Table) Indexed() bool {
	return t == DD || t == FD || t == DDCB || t == FDCB
}
