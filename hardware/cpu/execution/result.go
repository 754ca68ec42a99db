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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction executed by
// the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the table and opcode the instruction was finally decoded from. for a
	// prefixed instruction the opcode is the byte following the prefix
	Table  instructions.Table
	Opcode uint8

	// the displacement byte for indexed instructions. only meaningful if
	// HasDisplacement is true
	Displacement    int8
	HasDisplacement bool

	// the number of bytes read from the program counter, including prefix
	// bytes, displacements and immediate data
	ByteCount int

	// the number of redundant DD or FD prefixes that preceded the instruction
	RedundantPrefixes int

	// the number of T-states the instruction took. for conditional and
	// repeating instructions this is the cost of the path taken
	Cycles int

	// whether the instruction was an interrupt acknowledgement rather than an
	// instruction fetched from memory
	Interrupt bool

	// whether the CPU was halted. no instruction was fetched
	Halted bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return "not finalised"
	}

	if r.Interrupt {
		return fmt.Sprintf("%04x  interrupt  [%d]", r.Address, r.Cycles)
	}

	if r.Halted {
		return fmt.Sprintf("%04x  halted  [%d]", r.Address, r.Cycles)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  ", r.Address))
	for _, p := range r.Table.Prefix() {
		s.WriteString(fmt.Sprintf("%02x ", p))
	}
	if r.HasDisplacement {
		s.WriteString(fmt.Sprintf("%+d ", r.Displacement))
	}
	s.WriteString(fmt.Sprintf("%02x  (%d bytes)  [%d]", r.Opcode, r.ByteCount, r.Cycles))

	return s.String()
}
