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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/romshift/statsview"
	"github.com/jetsetilly/romshift/test"
)

func TestCounters(t *testing.T) {
	before := statsview.Counters()

	statsview.Record(7, false)
	statsview.Record(3, true)
	statsview.Record(2, false)

	after := statsview.Counters()
	test.ExpectEquality(t, after.Sets-before.Sets, 2)
	test.ExpectEquality(t, after.Skipped-before.Skipped, 1)
	test.ExpectEquality(t, after.Sites-before.Sites, 9)
}
