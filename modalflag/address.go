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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a flag.Value for 16 bit addresses. Values can be given in
// decimal or in hexadecimal with a leading "0x" or "$" or a trailing "h".
type Address uint16

func (a *Address) String() string {
	return fmt.Sprintf("%#04x", uint16(*a))
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasSuffix(s, "h"), strings.HasSuffix(s, "H"):
		s = s[:len(s)-1]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit address: %w", err)
	}
	*a = Address(v)
	return nil
}
