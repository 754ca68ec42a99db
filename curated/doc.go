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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Is() checks whether an
// error was created with a specific pattern and Has() checks whether the
// pattern occurs anywhere in a chain of curated errors:
//
//	e := curated.Errorf("memory: load overrun at %#04x", 0xffff)
//	f := curated.Errorf("cpm: %v", e)
//
//	curated.Is(e, "memory: load overrun at %#04x")  // true
//	curated.Is(f, "memory: load overrun at %#04x")  // false
//	curated.Has(f, "memory: load overrun at %#04x") // true
//
// Both functions look through errors wrapped with the %w verb of fmt.Errorf()
// so a curated error can be given context by code that does not use this
// package.
//
// Patterns that callers are expected to test for should be exported as string
// constants by the package that creates the error.
//
// A curated error also unwraps to any error values it was created with, so
// errors.Is() and errors.As() from the standard library see through curated
// errors to the wrapped sentinel errors.
//
// The Error() function removes duplicate adjacent parts of the message, where
// parts are separated by the sub-string ": ". So a chain that results in
//
//	cpm: cpm: bdos function not supported
//
// is printed as
//
//	cpm: bdos function not supported
package curated
