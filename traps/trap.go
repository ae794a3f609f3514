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

package traps

// the index of the first trap with bit 0x0800 clear.
const clearBitBase = 0x200

// trap number ranges.
const (
	trapBase    = 0xa000
	toolboxBase = 0xa800
	toolboxBit  = 0x0800
)

// IndexToTrap converts a table index to a trap number. Indices below 0x200
// are toolbox traps, numbered from 0xa800. Indices from 0x200 are numbered
// from 0xa000.
func IndexToTrap(idx int) uint16 {
	if idx >= clearBitBase {
		return uint16(trapBase + idx - clearBitBase)
	}
	return uint16(toolboxBase + idx)
}

// TrapToIndex converts a trap number to a table index. It is the inverse of
// IndexToTrap(). Bits of the trap number outside the range of the trap type
// are ignored.
func TrapToIndex(trap uint16) int {
	if trap&toolboxBit == toolboxBit {
		return int(trap & 0x1ff)
	}
	return int(trap&0xff) + clearBitBase
}

// IsToolbox returns true if the trap number is for a toolbox trap.
func IsToolbox(trap uint16) bool {
	return trap&toolboxBit == toolboxBit
}
