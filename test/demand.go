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

package test

import "testing"

// DemandEquality ends the test immediately if v does not equal the expected
// value. Use it in preference to ExpectEquality() when later parts of the test
// rely on the value. For example, the length of a slice that is about to be
// indexed.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sdemanded equality for %T: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess ends the test immediately if v is not a success value. See
// ExpectSuccess().
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Fatalf("%sdemanded success for %T: %v", id(tags...), v, v)
	}
}

// DemandFailure ends the test immediately if v is not a failure value.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		t.Fatalf("%sdemanded failure for %T: %v", id(tags...), v, v)
	}
}

// DemandImplements ends the test immediately if instance does not satisfy the
// interface T. The implements argument is only used to infer T and is usually
// a nil pointer to the interface.
func DemandImplements[T any](t *testing.T, instance any, implements T, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		t.Fatalf("%s%T does not implement %T", id(tags...), instance, implements)
		return false
	}
	return true
}
