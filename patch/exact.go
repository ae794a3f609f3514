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

package patch

import (
	"bytes"

	"github.com/jetsetilly/romshift/curated"
)

// ApplyExact rewrites the bytes at address with the after bytes. The bytes
// already at the address must be the same as the before bytes.
//
// The after bytes may be shorter than the before bytes, in which case only
// the first len(after) bytes are rewritten. They may not be longer.
//
// Returns the address that was patched.
func ApplyExact(buf []byte, address int, before []byte, after []byte) (int, error) {
	if len(before) == 0 || len(after) > len(before) {
		return address, curated.Errorf(LengthMismatch, len(before), len(after))
	}

	if address < 0 || address+len(before) > len(buf) {
		return address, curated.Errorf(OutOfRange, len(before), address, len(buf))
	}

	span := buf[address : address+len(before)]
	if !bytes.Equal(span, before) {
		// copy the span so that the error is not affected by any later changes
		// to the buffer
		actual := make([]byte, len(span))
		copy(actual, span)
		return address, curated.Errorf(ContentMismatch, address, before, actual)
	}

	copy(span, after)

	return address, nil
}
