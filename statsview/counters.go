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

package statsview

import "sync/atomic"

// Totals of the patch run so far.
type Totals struct {
	Sets    int
	Skipped int
	Sites   int
}

var totals struct {
	sets    atomic.Int64
	skipped atomic.Int64
	sites   atomic.Int64
}

// Record the outcome of one patch set. The count of sites is ignored for a
// skipped set.
func Record(sites int, skipped bool) {
	if skipped {
		totals.skipped.Add(1)
		return
	}
	totals.sets.Add(1)
	totals.sites.Add(int64(sites))
}

// Counters returns the current totals. Safe to call while sets are being
// recorded.
func Counters() Totals {
	return Totals{
		Sets:    int(totals.sets.Load()),
		Skipped: int(totals.skipped.Load()),
		Sites:   int(totals.sites.Load()),
	}
}
