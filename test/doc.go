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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure() and ExpectSuccess() functions test for failure and
// success under generic conditions. The bool type and the error type are
// supported. Note that nil is considered a success because of how errors
// usually work (nil to indicate no error).
//
// ExpectEquality() and ExpectInequality() compare values of the same
// comparable type. The Demand*() variants of the functions end the test
// immediately on failure and should be used when further tests rely on the
// value being correct.
//
// All functions accept an optional list of tags that are prefixed to any
// failure message. This is useful for identifying the failing case in table
// driven tests:
//
//	for i, c := range cases {
//		test.ExpectEquality(t, c.got, c.want, "case", i)
//	}
//
// The CappedWriter type implements io.Writer and is useful for capturing
// output that might otherwise grow without limit.
package test
