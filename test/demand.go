// This file is part of Romshift.
//
// Romshift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romshift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romshift.  If not, see <https://www.gnu.org/licenses/>.

package test

import "testing"

// The Demand functions are the Expect functions of the same name followed by
// t.FailNow() when the expectation is not met. The message is the one the
// Expect function reports.

// DemandEquality stops the test if v does not equal expectedValue. Useful for
// lengths that later parts of the test index with.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if !ExpectEquality(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}

// DemandSuccess stops the test if v is not a success value.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectSuccess(t, v, tags...) {
		t.FailNow()
	}
}

// DemandFailure stops the test if v is not a failure value.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectFailure(t, v, tags...) {
		t.FailNow()
	}
}

// DemandBytes stops the test if the byte slices differ. An image that does
// not match is usually followed by many more mismatches.
func DemandBytes(t *testing.T, v []byte, expectedValue []byte, tags ...any) {
	t.Helper()
	if !ExpectBytes(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}
