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
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/gopher80/test"
)

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	w, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)
	test.DemandImplements(t, w, (io.Writer)(nil))

	n, err := fmt.Fprint(w, "hello")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, w.String(), "hello")

	// the write is reported in full even though only part of it is kept
	n, err = fmt.Fprint(w, " world")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, w.String(), "hello wo")
	test.ExpectEquality(t, w.Discarded(), 3)

	w.Reset()
	test.ExpectEquality(t, w.String(), "")
	test.ExpectEquality(t, w.Discarded(), 0)

	fmt.Fprint(w, "again")
	test.ExpectEquality(t, w.String(), "again")
}
