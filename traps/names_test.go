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
	"strings"
	"testing"

	"github.com/jetsetilly/romshift/curated"
	"github.com/jetsetilly/romshift/test"
	"github.com/jetsetilly/romshift/traps"
)

const namesFile = `# trap names
A9A0,_GetResource
A02F,_PostEvent

a000, _Open
`

func TestReadNames(t *testing.T) {
	names, err := traps.ReadNames(strings.NewReader(namesFile))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(names), 3)

	n, ok := names.Name(0x1a0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "_GetResource")

	n, ok = names.Name(0x22f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "_PostEvent")

	n, ok = names.Name(traps.TrapToIndex(0xa000))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "_Open")

	_, ok = names.Name(0x001)
	test.ExpectFailure(t, ok)
}

func TestDuplicateNames(t *testing.T) {
	_, err := traps.ReadNames(strings.NewReader("A12F,_PPostEvent\nA02F,_PostEvent\n"))
	test.ExpectSuccess(t, curated.Is(err, traps.DuplicateName))
}

func TestBadNames(t *testing.T) {
	_, err := traps.ReadNames(strings.NewReader("A9A0\n"))
	test.ExpectSuccess(t, curated.Is(err, traps.BadNameLine))

	_, err = traps.ReadNames(strings.NewReader("A9A0,_GetResource,extra\n"))
	test.ExpectSuccess(t, curated.Is(err, traps.BadNameLine))

	_, err = traps.ReadNames(strings.NewReader("XYZ,_Bad\n"))
	test.ExpectSuccess(t, curated.Is(err, traps.BadNameLine))

	_, err = traps.ReadNames(strings.NewReader("A9A0,\n"))
	test.ExpectSuccess(t, curated.Is(err, traps.BadNameLine))
}
