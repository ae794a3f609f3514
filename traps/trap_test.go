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

package traps_test

import (
	"testing"

	"github.com/jetsetilly/romshift/test"
	"github.com/jetsetilly/romshift/traps"
)

func TestIndexToTrap(t *testing.T) {
	test.ExpectEquality(t, traps.IndexToTrap(0x000), 0xa800)
	test.ExpectEquality(t, traps.IndexToTrap(0x1a0), 0xa9a0)
	test.ExpectEquality(t, traps.IndexToTrap(0x1ff), 0xa9ff)
	test.ExpectEquality(t, traps.IndexToTrap(0x200), 0xa000)
	test.ExpectEquality(t, traps.IndexToTrap(0x22f), 0xa02f)
	test.ExpectEquality(t, traps.IndexToTrap(0x2ff), 0xa0ff)
}

func TestTrapToIndex(t *testing.T) {
	test.ExpectEquality(t, traps.TrapToIndex(0xa800), 0x000)
	test.ExpectEquality(t, traps.TrapToIndex(0xa9a0), 0x1a0)
	test.ExpectEquality(t, traps.TrapToIndex(0xa000), 0x200)
	test.ExpectEquality(t, traps.TrapToIndex(0xa02f), 0x22f)

	// flag bits outside of the trap number are ignored
	test.ExpectEquality(t, traps.TrapToIndex(0xa42f), 0x22f)
	test.ExpectEquality(t, traps.TrapToIndex(0xafa0), 0x1a0)

	test.ExpectSuccess(t, traps.IsToolbox(0xa9a0))
	test.ExpectFailure(t, traps.IsToolbox(0xa02f))
}

func TestTrapRoundTrip(t *testing.T) {
	for idx := 0; idx < 0x300; idx++ {
		test.ExpectEquality(t, traps.TrapToIndex(traps.IndexToTrap(idx)), idx)
	}
}
