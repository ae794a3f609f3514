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

package paths_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/romshift/paths"
	"github.com/jetsetilly/romshift/test"
)

func TestPaths(t *testing.T) {
	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".romshift/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".romshift/foo/bar")

	pth, err = paths.ResourcePath("", "trap_names.txt")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".romshift/trap_names.txt")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".romshift")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("dump", "sets")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "dump_sets_"))
	test.ExpectEquality(t, len(fn), len("dump_sets_YYYYMMDD_HHMMSS"))

	fn = paths.UniqueFilename("dump", " ")
	test.ExpectEquality(t, len(fn), len("dump_YYYYMMDD_HHMMSS"))
}
