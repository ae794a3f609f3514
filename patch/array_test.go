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

package patch_test

import (
	"testing"

	"github.com/jetsetilly/romshift/curated"
	"github.com/jetsetilly/romshift/patch"
	"github.com/jetsetilly/romshift/test"
)

// table returns a buffer of longwords, each one an absolute address in the
// 0x40xxxx range.
func table(n int) []byte {
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		buf[i*4+1] = 0x40
		buf[i*4+3] = uint8(i)
	}
	return buf
}

func TestArray(t *testing.T) {
	buf := table(8)

	sites, err := patch.ApplyArray(buf, 0x01, 0x1d, 4, []byte{0x40}, []byte{0xf8})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(sites), patch.ArraySites(0x01, 0x1d, 4))
	test.ExpectSlice(t, sites, []int{0x01, 0x05, 0x09, 0x0d, 0x11, 0x15, 0x19, 0x1d})

	for i := 0; i < 8; i++ {
		test.ExpectEquality(t, buf[i*4+1], uint8(0xf8))
		test.ExpectEquality(t, buf[i*4+3], uint8(i))
	}
}

func TestArraySites(t *testing.T) {
	test.ExpectEquality(t, patch.ArraySites(0x01, 0x1d, 4), 8)
	test.ExpectEquality(t, patch.ArraySites(0x01, 0x1f, 4), 8)
	test.ExpectEquality(t, patch.ArraySites(0x01, 0x01, 4), 1)
	test.ExpectEquality(t, patch.ArraySites(0x19ed, 0x1ae7, 4), 63)
	test.ExpectEquality(t, patch.ArraySites(0x02, 0x01, 4), 0)
	test.ExpectEquality(t, patch.ArraySites(0x01, 0x10, 0), 0)

	// the end address need not be a site
	buf := table(8)
	sites, err := patch.ApplyArray(buf, 0x01, 0x1f, 4, []byte{0x40}, []byte{0xf8})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(sites), 8)
}

func TestArrayEmpty(t *testing.T) {
	buf := table(2)
	sites, err := patch.ApplyArray(buf, 0x05, 0x01, 4, []byte{0x40}, []byte{0xf8})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(sites), 0)
	test.ExpectBytes(t, buf, table(2))
}

func TestArrayMismatch(t *testing.T) {
	buf := table(8)
	buf[0x0d] = 0x41

	sites, err := patch.ApplyArray(buf, 0x01, 0x1d, 4, []byte{0x40}, []byte{0xf8})
	test.ExpectSuccess(t, curated.Is(err, patch.ContentMismatch))

	// sites before the failure remain patched. the failing site and the sites
	// after it are not touched
	test.ExpectSlice(t, sites, []int{0x01, 0x05, 0x09})
	test.ExpectEquality(t, buf[0x09], uint8(0xf8))
	test.ExpectEquality(t, buf[0x0d], uint8(0x41))
	test.ExpectEquality(t, buf[0x11], uint8(0x40))
}

func TestArrayBadlySpecified(t *testing.T) {
	buf := table(2)

	_, err := patch.ApplyArray(buf, 0x01, 0x05, 0, []byte{0x40}, []byte{0xf8})
	test.ExpectSuccess(t, curated.Is(err, patch.InvalidStride))

	_, err = patch.ApplyArray(buf, 0x01, 0x05, -4, []byte{0x40}, []byte{0xf8})
	test.ExpectSuccess(t, curated.Is(err, patch.InvalidStride))

	_, err = patch.ApplyArray(buf, 0x01, 0x05, 4, []byte{0x40}, []byte{0xf8, 0x00})
	test.ExpectSuccess(t, curated.Is(err, patch.LengthMismatch))

	// out of range part way through
	sites, err := patch.ApplyArray(buf, 0x01, 0x09, 4, []byte{0x40}, []byte{0xf8})
	test.ExpectSuccess(t, curated.Is(err, patch.OutOfRange))
	test.ExpectEquality(t, len(sites), 2)
}
