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
	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the decoded instruction.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Cycles < 4 {
		return curated.Errorf("cpu: too few cycles (%d) for %s opcode %#02x", r.Cycles, r.Table, r.Opcode)
	}

	if r.Interrupt || r.Halted {
		if r.ByteCount != 0 {
			return curated.Errorf("cpu: unexpected number of bytes read (%d) when no instruction was fetched", r.ByteCount)
		}
		return nil
	}

	// the minimum number of bytes is the length of the prefix plus the opcode
	// itself. redundant prefixes add one byte each
	minBytes := len(r.Table.Prefix()) + 1 + r.RedundantPrefixes
	if r.HasDisplacement {
		minBytes++
	}
	if r.ByteCount < minBytes || r.ByteCount > minBytes+2 {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d) for %s opcode %#02x", r.ByteCount, r.Table, r.Opcode)
	}

	// every redundant prefix costs four cycles
	cycles := r.Cycles - r.RedundantPrefixes*4

	switch r.Table {
	case instructions.CB:
		if cycles != 8 && cycles != 12 && cycles != 15 {
			return curated.Errorf("cpu: number of cycles wrong for CB opcode %#02x (%d)", r.Opcode, cycles)
		}
	case instructions.DDCB, instructions.FDCB:
		if r.ByteCount != 4 {
			return curated.Errorf("cpu: unexpected number of bytes read during decode (%d) for %s opcode %#02x", r.ByteCount, r.Table, r.Opcode)
		}
		if !r.HasDisplacement {
			return curated.Errorf("cpu: missing displacement for %s opcode %#02x", r.Table, r.Opcode)
		}
		if instructions.BitOperation(r.Opcode>>6) == instructions.BIT {
			if cycles != 20 {
				return curated.Errorf("cpu: number of cycles wrong for %s opcode %#02x (%d instead of 20)", r.Table, r.Opcode, cycles)
			}
		} else if cycles != 23 {
			return curated.Errorf("cpu: number of cycles wrong for %s opcode %#02x (%d instead of 23)", r.Table, r.Opcode, cycles)
		}
	case instructions.DD, instructions.FD:
		if cycles < 8 {
			return curated.Errorf("cpu: number of cycles wrong for %s opcode %#02x (%d)", r.Table, r.Opcode, cycles)
		}
	case instructions.ED:
		if cycles < 8 {
			return curated.Errorf("cpu: number of cycles wrong for ED opcode %#02x (%d)", r.Opcode, cycles)
		}
	}

	return nil
}
