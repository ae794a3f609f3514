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

func codeSignature(t *testing.T, id uint16) patch.Signature {
	t.Helper()
	sig, err := patch.NewSignature([]byte{0x00, 0x00, 0x00, 0x1c}, "CODE", id)
	test.DemandSuccess(t, err)
	return sig
}

// disk returns a buffer with the signature placed at each of the offsets.
func disk(sig patch.Signature, offsets ...int) []byte {
	buf := make([]byte, 0x60)
	for i := range buf {
		buf[i] = uint8(i)
	}
	for _, o := range offsets {
		copy(buf[o:], sig.Needle())
	}
	return buf
}

func TestNeedle(t *testing.T) {
	sig := codeSignature(t, 0x0102)
	test.ExpectBytes(t, sig.Needle(), []byte{0x00, 0x00, 0x00, 0x1c, 'C', 'O', 'D', 'E', 0x01, 0x02})
	test.ExpectEquality(t, sig.String(), "'CODE' #258")
}

func TestFindResource(t *testing.T) {
	sig := codeSignature(t, 1)
	buf := disk(sig, 0x10)

	offset, err := patch.FindResource(buf, sig)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 0x10)

	// the buffer is not changed by the search
	test.ExpectBytes(t, buf, disk(sig, 0x10))
}

func TestFindResourceNotFound(t *testing.T) {
	buf := disk(codeSignature(t, 1), 0x10)

	_, err := patch.FindResource(buf, codeSignature(t, 2))
	test.ExpectSuccess(t, curated.Is(err, patch.NotFound))
	test.ExpectEquality(t, err.Error(), "patch: resource 'CODE' #2 not found")
}

func TestFindResourceAmbiguous(t *testing.T) {
	sig := codeSignature(t, 1)
	buf := disk(sig, 0x10, 0x30)

	_, err := patch.FindResource(buf, sig)
	test.ExpectSuccess(t, curated.Is(err, patch.Ambiguous))
	test.ExpectEquality(t, err.Error(), "patch: resource 'CODE' #1 is ambiguous (2 candidates at 0x0010, 0x0030)")
}

func TestNewSignature(t *testing.T) {
	_, err := patch.NewSignature([]byte{0x00, 0x00, 0x1c}, "CODE", 1)
	test.ExpectFailure(t, err)

	_, err = patch.NewSignature([]byte{0x00, 0x00, 0x00, 0x1c}, "CODES", 1)
	test.ExpectFailure(t, err)

	_, err = patch.NewSignature([]byte{0x00, 0x00, 0x00, 0x1c}, "DRVR", 1)
	test.ExpectSuccess(t, err)
}
