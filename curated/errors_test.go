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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jetsetilly/romshift/curated"
	"github.com/jetsetilly/romshift/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestRepeatedPrefix(t *testing.T) {
	e := curated.Errorf("patch: content mismatch at 0x%04x", 5)
	f := curated.Errorf("patch: %v", e)
	test.ExpectEquality(t, f.Error(), "patch: content mismatch at 0x0005")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))

	// Has() should fail because we haven't included testError anywhere in the
	// wrapped chain of f
	f := curated.Errorf(wrapError, errors.New("plain"))
	test.ExpectFailure(t, curated.Has(f, testError))

	// IsAny() should return true for all curated errors
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.IsAny(f))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(wrapError, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapError))
	test.ExpectFailure(t, curated.Is(f, testError))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("image: %v", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	// a curated value is not returned by Unwrap()
	f := curated.Errorf(wrapError, curated.Errorf(testError, "foo"))
	test.ExpectSuccess(t, errors.Unwrap(f) == nil)
}
