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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher80/test"
)

func TestSuccessValues(t *testing.T) {
	var err error
	for i, v := range []any{true, err, nil} {
		test.ExpectSuccess(t, v, "success", i)
	}
}

func TestFailureValues(t *testing.T) {
	for i, v := range []any{false, errors.New("bus error")} {
		test.ExpectFailure(t, v, "failure", i)
	}
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, uint16(0x1234), 0x12<<8|0x34)
	test.ExpectEquality(t, "LD A,B", "LD A,"+"B")
	test.ExpectInequality(t, uint8(0xff), 0xfe)
	test.ExpectInequality(t, true, false)

	test.DemandEquality(t, len([]int{1, 2, 3}), 3)
	test.DemandSuccess(t, true)
	test.DemandFailure(t, errors.New("demanded"))
}

func TestApproximate(t *testing.T) {
	// a measured clock rate within 5% of the reference
	test.ExpectApproximate(t, 3.9, 4.0, 0.05)
	test.ExpectApproximate(t, uint64(1005), 1000, 0.01)
	test.ExpectApproximate(t, 10, 11, 0.1)
}
