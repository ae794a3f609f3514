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

package imageloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/romshift/curated"
	"github.com/jetsetilly/romshift/test"
)

func TestAbandon(t *testing.T) {
	t.Cleanup(func() {
		pending.Lock()
		pending.abandoned = false
		pending.Unlock()
	})

	dir := t.TempDir()
	output := filepath.Join(dir, "ROM.patched")

	// a write that has created its temporary file but not yet renamed it
	f, err := createTemp(output)
	test.DemandSuccess(t, err)
	tmp := f.Name()
	test.ExpectSuccess(t, f.Close())

	_, err = os.Stat(tmp)
	test.DemandSuccess(t, err)

	Abandon()

	_, err = os.Stat(tmp)
	test.ExpectSuccess(t, os.IsNotExist(err))

	// nothing more can be written
	ld := NewLoader(filepath.Join(dir, "ROM.bin"), "")
	err = ld.Write(output, []byte{0x00})
	test.ExpectSuccess(t, curated.Is(err, Abandoned))

	ents, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ents), 0)

	// the temporary file was renamed or removed by the time release is called
	release(tmp)
	test.ExpectEquality(t, len(pending.files), 0)
}
