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

package cpu

import (
	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
)

// handler executes one instruction variant and returns the number of T-states
// it took. the displacement argument is only used by the DDCB and FDCB
// tables, where the displacement precedes the opcode.
//
// handlers for the DD and FD tables return the cost of the whole instruction,
// including the prefix.
type handler func(r *registers.Registers, b *bus, d int8) int

// the dispatch tables. built once by init() and never changed afterwards
var tables [instructions.NumTables][256]handler

// Sentinel error patterns.
const (
	MissingHandler = "cpu: %s table has no handler for opcode %#02x"
)

func init() {
	base := baseTable()
	tables[instructions.Unprefixed] = base
	tables[instructions.CB] = cbTable()
	tables[instructions.ED] = edTable()
	tables[instructions.DD] = indexTable(base)
	tables[instructions.FD] = indexTable(base)
	tables[instructions.DDCB] = indexBitTable()
	tables[instructions.FDCB] = indexBitTable()

	if err := ValidateTables(); err != nil {
		panic(err)
	}
}

// ValidateTables checks that every opcode in every dispatch table has a
// handler. The package will not initialise if this is not the case so the
// function will only ever return nil to callers outside the package.
func ValidateTables() error {
	for t := instructions.Table(0); t < instructions.NumTables; t++ {
		for op := range tables[t] {
			if tables[t][op] == nil {
				return curated.Errorf(MissingHandler, t, op)
			}
		}
	}
	return nil
}

// indexTables returns the DD/FD and DDCB/FDCB tables for the prefix.
func indexTables(p registers.Prefix) (instructions.Table, instructions.Table) {
	if p == registers.IndexY {
		return instructions.FD, instructions.FDCB
	}
	return instructions.DD, instructions.DDCB
}

// chain to the table for the next opcode byte.
func chain(table instructions.Table) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		op := b.fetchOpcode(r, table)
		return tables[table][op](r, b, 0)
	}
}

// prefixIndex is the handler for the DD and FD bytes in the unprefixed table.
func prefixIndex(p registers.Prefix) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		r.Prefix = p
		t, _ := indexTables(p)
		op := b.fetchOpcode(r, t)
		return tables[t][op](r, b, 0)
	}
}

// redundantIndex is the handler for DD and FD bytes in the DD and FD tables.
// the earlier prefix acts as a four cycle NOP and the most recent prefix is
// the one that takes effect.
func redundantIndex(p registers.Prefix) handler {
	return func(r *registers.Registers, b *bus, _ int8) int {
		b.result.RedundantPrefixes++
		r.Prefix = p
		t, _ := indexTables(p)
		op := b.fetchOpcode(r, t)
		return 4 + tables[t][op](r, b, 0)
	}
}

// indexThenED is the handler for the ED byte in the DD and FD tables. the
// index prefix is dropped and the ED instruction executes normally.
func indexThenED(r *registers.Registers, b *bus, _ int8) int {
	b.result.RedundantPrefixes++
	r.Prefix = registers.NoPrefix
	op := b.fetchOpcode(r, instructions.ED)
	return 4 + tables[instructions.ED][op](r, b, 0)
}

// indexThenCB is the handler for the CB byte in the DD and FD tables. the
// displacement comes before the opcode and neither are M1 cycles so the
// refresh register is not incremented.
func indexThenCB(r *registers.Registers, b *bus, _ int8) int {
	_, t := indexTables(r.Prefix)
	d := b.fetchDisplacement(r)
	op := b.fetch(r)
	b.result.Table = t
	b.result.Opcode = op
	return tables[t][op](r, b, d)
}

// plus4 is used for instructions in the DD and FD tables that have the same
// behaviour as the unprefixed instruction but take four more cycles.
func plus4(h handler) handler {
	return func(r *registers.Registers, b *bus, d int8) int {
		return h(r, b, d) + 4
	}
}
