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
	"fmt"
)

// Prefix records which index register, if any, has been selected by a DD or
// FD prefix byte. The prefix only lasts for the duration of one instruction.
type Prefix int

// List of valid Prefix values.
const (
	NoPrefix Prefix = iota
	IndexX
	IndexY
)

func (p Prefix) String() string {
	switch p {
	case IndexX:
		return "IX"
	case IndexY:
		return "IY"
	}
	return "HL"
}

// Bank is one set of the general purpose registers. The CPU has a main bank
// and an alternate bank.
type Bank struct {
	A uint8
	F Flags
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

// Registers is the complete register file of the Z80.
type Registers struct {
	Bank

	// the alternate register bank. only accessible by exchanging it with the
	// main bank
	Alt Bank

	IX uint16
	IY uint16
	SP uint16
	PC uint16

	// interrupt vector and memory refresh registers
	I uint8
	R uint8

	// the internal MEMPTR register. not visible to the programmer but it leaks
	// into the X5 and X3 flags of some instructions
	WZ uint16

	// interrupt flip-flops and mode
	IFF1 bool
	IFF2 bool
	IM   uint8

	// Halted is true after a HALT instruction and until an interrupt is
	// accepted
	Halted bool

	// EIPending is true for the instruction boundary that immediately follows
	// an EI instruction. maskable interrupts are not accepted while it is set
	EIPending bool

	// the active index prefix. cleared at the end of every instruction
	Prefix Prefix
}

// Reset registers to power-on state.
func (r *Registers) Reset() {
	*r = Registers{}
	r.A = 0xff
	r.F = 0xff
	r.SP = 0xffff
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x SP=%04x PC=%04x I=%02x R=%02x %s",
		r.AF(), r.BC(), r.DE(), r.HL(), r.IX, r.IY, r.SP, r.PC, r.I, r.R, r.F)
}

// SetFlags replaces the flags register.
func (r *Registers) SetFlags(f uint8) {
	r.F = Flags(f)
}

// AF returns the accumulator and flags as a register pair.
func (r Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F)
}

// SetAF sets the accumulator and flags from a register pair value.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = Flags(v)
}

// BC returns the value of the BC register pair.
func (r Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC sets the value of the BC register pair.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the value of the DE register pair.
func (r Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE sets the value of the DE register pair.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the value of the HL register pair. The active prefix is ignored.
func (r Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL sets the value of the HL register pair. The active prefix is ignored.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// Index returns HL, IX or IY depending on the active prefix.
func (r Registers) Index() uint16 {
	switch r.Prefix {
	case IndexX:
		return r.IX
	case IndexY:
		return r.IY
	}
	return r.HL()
}

// SetIndex sets HL, IX or IY depending on the active prefix.
func (r *Registers) SetIndex(v uint16) {
	switch r.Prefix {
	case IndexX:
		r.IX = v
	case IndexY:
		r.IY = v
	default:
		r.SetHL(v)
	}
}

// Get8 returns the value of the 8-bit register. The active prefix is ignored.
// Returns zero for MemoryOnly.
func (r Registers) Get8(t Target) uint8 {
	switch t {
	case TargetB:
		return r.B
	case TargetC:
		return r.C
	case TargetD:
		return r.D
	case TargetE:
		return r.E
	case TargetH:
		return r.H
	case TargetL:
		return r.L
	case TargetA:
		return r.A
	}
	return 0
}

// Set8 sets the value of the 8-bit register. The active prefix is ignored.
// Setting MemoryOnly has no effect.
func (r *Registers) Set8(t Target, v uint8) {
	switch t {
	case TargetB:
		r.B = v
	case TargetC:
		r.C = v
	case TargetD:
		r.D = v
	case TargetE:
		r.E = v
	case TargetH:
		r.H = v
	case TargetL:
		r.L = v
	case TargetA:
		r.A = v
	}
}

// Reg8 is like Get8 except that H and L refer to the high and low byte of the
// index register selected by the active prefix.
func (r Registers) Reg8(t Target) uint8 {
	switch t {
	case TargetH:
		return uint8(r.Index() >> 8)
	case TargetL:
		return uint8(r.Index())
	}
	return r.Get8(t)
}

// SetReg8 is like Set8 except that H and L refer to the high and low byte of
// the index register selected by the active prefix.
func (r *Registers) SetReg8(t Target, v uint8) {
	switch t {
	case TargetH:
		r.SetIndex(r.Index()&0x00ff | uint16(v)<<8)
	case TargetL:
		r.SetIndex(r.Index()&0xff00 | uint16(v))
	default:
		r.Set8(t, v)
	}
}

// ExchangeAF swaps the accumulator and flags with the alternate bank.
func (r *Registers) ExchangeAF() {
	r.A, r.Alt.A = r.Alt.A, r.A
	r.F, r.Alt.F = r.Alt.F, r.F
}

// Exchange swaps BC, DE and HL with the alternate bank.
func (r *Registers) Exchange() {
	r.B, r.Alt.B = r.Alt.B, r.B
	r.C, r.Alt.C = r.Alt.C, r.C
	r.D, r.Alt.D = r.Alt.D, r.D
	r.E, r.Alt.E = r.Alt.E, r.E
	r.H, r.Alt.H = r.Alt.H, r.H
	r.L, r.Alt.L = r.Alt.L, r.L
}

// IncR increments the lower seven bits of the refresh register. Bit 7 is
// never changed by the increment.
func (r *Registers) IncR() {
	r.R = r.R&0x80 | (r.R+1)&0x7f
}
