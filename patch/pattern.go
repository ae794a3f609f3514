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

// Search returns the offset of every occurrence of the pattern in the buffer.
// Occurrences may overlap. The buffer is not changed.
func Search(buf []byte, pattern []byte) []int {
	var offsets []int
	if len(pattern) == 0 {
		return offsets
	}
	for i := 0; i+len(pattern) <= len(buf); i++ {
		if bytes.Equal(buf[i:i+len(pattern)], pattern) {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// Count returns the number of occurrences of the pattern in the buffer,
// including overlapping occurrences.
func Count(buf []byte, pattern []byte) int {
	return len(Search(buf, pattern))
}

// ApplyPattern replaces every occurrence of pattern with replacement. The
// pattern and the replacement must be the same length.
//
// The buffer is examined in a single pass from the start. Each offset is
// compared with the buffer as it is at the time the offset is visited, so a
// replacement is visible to the comparison at later offsets that overlap it.
//
// Returns the offsets that were patched. Finding no occurrences is not an
// error; callers that expect a number of occurrences should check the length
// of the returned slice.
func ApplyPattern(buf []byte, pattern []byte, replacement []byte) ([]int, error) {
	if len(pattern) == 0 || len(pattern) != len(replacement) {
		return nil, curated.Errorf(LengthMismatch, len(pattern), len(replacement))
	}

	var sites []int
	for i := 0; i+len(pattern) <= len(buf); i++ {
		if bytes.Equal(buf[i:i+len(pattern)], pattern) {
			copy(buf[i:], replacement)
			sites = append(sites, i)
		}
	}

	return sites, nil
}
