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
	"github.com/jetsetilly/romshift/curated"
)

// ApplyArray applies an exact patch at start and at every stride bytes after
// start, up to and including end.
//
// Patching stops at the first site that fails. The sites that were patched
// before the failure are returned along with the error and those sites remain
// patched in the buffer.
func ApplyArray(buf []byte, start int, end int, stride int, before []byte, after []byte) ([]int, error) {
	if stride <= 0 {
		return nil, curated.Errorf(InvalidStride, stride)
	}

	// catch length errors before any site is patched
	if len(before) == 0 || len(after) > len(before) {
		return nil, curated.Errorf(LengthMismatch, len(before), len(after))
	}

	var sites []int
	for addr := start; addr <= end; addr += stride {
		if _, err := ApplyExact(buf, addr, before, after); err != nil {
			return sites, err
		}
		sites = append(sites, addr)
	}

	return sites, nil
}

// ArraySites returns the number of sites that an array patch would visit.
func ArraySites(start int, end int, stride int) int {
	if stride <= 0 || start > end {
		return 0
	}
	return (end-start)/stride + 1
}
