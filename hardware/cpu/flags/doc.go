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

// Package flags contains the functions used by the CPU to compute the value of
// the flags register. Each function returns its contribution to the flags
// register with the relevant bit already in position. The contributions of
// different functions never overlap so the complete flags value for an
// instruction can be built by or-ing the results together:
//
//	f := flags.SignCheck(v) | flags.ZeroCheck(v) | flags.Parity(v) |
//		flags.Unaffect(r.F, registers.Carry)
//
// All functions are pure. The S, Z, X5, X3 and P contributions for every
// byte value are prepared when the package is initialised.
package flags
