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

import (
	"strings"
)

// Flags is the special purpose register that stores the flags of the CPU.
type Flags uint8

// List of flag masks. The X5 and X3 flags are undocumented and are usually a
// copy of bits 5 and 3 of the result of an operation.
const (
	Sign           Flags = 0x80
	Zero           Flags = 0x40
	X5             Flags = 0x20
	HalfCarry      Flags = 0x10
	X3             Flags = 0x08
	ParityOverflow Flags = 0x04
	Subtract       Flags = 0x02
	Carry          Flags = 0x01
)

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

// the order in which flags are written by String(). the string is the letter
// used when the flag is set.
var flagOrder = [8]struct {
	mask Flags
	set  rune
}{
	{Sign, 'S'},
	{Zero, 'Z'},
	{X5, '5'},
	{HalfCarry, 'H'},
	{X3, '3'},
	{ParityOverflow, 'P'},
	{Subtract, 'N'},
	{Carry, 'C'},
}

// String returns the flags as a string of eight characters. Flags that are
// set are shown in upper case and flags that are clear in lower case. The
// undocumented flags are shown as '5' and '3' when set and as '-' when clear.
func (f Flags) String() string {
	s := strings.Builder{}
	s.Grow(8)

	for _, o := range flagOrder {
		switch {
		case f&o.mask == o.mask:
			s.WriteRune(o.set)
		case o.set == '5' || o.set == '3':
			s.WriteRune('-')
		default:
			s.WriteString(strings.ToLower(string(o.set)))
		}
	}

	return s.String()
}

// Has returns true if all the flags in the mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Set or clear the flags in the mask.
func (f *Flags) Set(mask Flags, on bool) {
	if on {
		*f |= mask
	} else {
		*f &^= mask
	}
}
