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

// rom returns a small synthetic image. the longword at 0x0004 is an absolute
// address in the 0x40xxxx range
func rom() []byte {
	return []byte{
		0x00, 0x00, 0x2a, 0x00, 0x00, 0x40, 0x00, 0x2a,
		0x4e, 0xf9, 0x00, 0x40, 0x01, 0x00, 0x4e, 0x75,
	}
}

func TestExact(t *testing.T) {
	buf := rom()

	addr, err := patch.ApplyExact(buf, 0x05, []byte{0x40}, []byte{0xf8})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, addr, 0x05)
	test.ExpectBytes(t, buf[4:8], []byte{0x00, 0xf8, 0x00, 0x2a})

	// the rest of the buffer is unchanged
	expected := rom()
	expected[5] = 0xf8
	test.ExpectBytes(t, buf, expected)
}

func TestExactMismatch(t *testing.T) {
	buf := rom()

	_, err := patch.ApplyExact(buf, 0x0b, []byte{0x41}, []byte{0xf9})
	test.ExpectSuccess(t, curated.Is(err, patch.ContentMismatch))
	test.ExpectEquality(t, err.Error(), "patch: content mismatch at 0x000b (expected 41, found 40)")

	// buffer is unchanged
	test.ExpectBytes(t, buf, rom())
}

func TestExactShortAfter(t *testing.T) {
	buf := rom()

	// only the first byte of the span is rewritten
	_, err := patch.ApplyExact(buf, 0x0a, []byte{0x00, 0x40}, []byte{0x12})
	test.DemandSuccess(t, err)
	test.ExpectBytes(t, buf[0x0a:0x0c], []byte{0x12, 0x40})

	// after bytes longer than before bytes
	buf = rom()
	_, err = patch.ApplyExact(buf, 0x0a, []byte{0x00}, []byte{0x12, 0x34})
	test.ExpectSuccess(t, curated.Is(err, patch.LengthMismatch))
	test.ExpectBytes(t, buf, rom())

	// no before bytes
	_, err = patch.ApplyExact(buf, 0x0a, []byte{}, []byte{})
	test.ExpectSuccess(t, curated.Is(err, patch.LengthMismatch))
}

func TestExactOutOfRange(t *testing.T) {
	buf := rom()

	_, err := patch.ApplyExact(buf, 0x0f, []byte{0x75, 0x00}, []byte{0x00, 0x00})
	test.ExpectSuccess(t, curated.Is(err, patch.OutOfRange))

	_, err = patch.ApplyExact(buf, -1, []byte{0x00}, []byte{0x00})
	test.ExpectSuccess(t, curated.Is(err, patch.OutOfRange))

	test.ExpectBytes(t, buf, rom())
}

// applying the same patch twice fails because the before bytes are no longer
// present
func TestExactNotIdempotent(t *testing.T) {
	buf := rom()
	p := patch.NewExact(0x0b, []byte{0x40}, []byte{0xf8})

	_, err := patch.Apply(buf, p)
	test.DemandSuccess(t, err)

	_, err = patch.Apply(buf, p)
	test.ExpectSuccess(t, curated.Is(err, patch.ContentMismatch))
	test.ExpectEquality(t, buf[0x0b], uint8(0xf8))
}
