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

func TestWriteLabels(t *testing.T) {
	// entry 0: named
	// entry 1: unimplemented and unnamed. no label
	// entry 2: unnamed
	// entry 3: unimplemented but named
	mem := []byte{0xff, 0x00, 0x00, 0x01, 0x00, 0x80, 0x81, 0x80, 0x00, 0x00}
	names := traps.Names{0: "_Open", 3: "_Stub"}

	tw := &test.CompareWriter{}
	dec := traps.NewDecoderAt(mem, 0, traps.DefaultConfig)
	n, err := traps.WriteLabels(tw, dec, names, traps.DefaultConfig)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	test.ExpectSlice(t, tw.Lines(), []string{
		`createLabel(currentProgram.parseAddress("0x400100")[0], "_Open", True)`,
		`createLabel(currentProgram.parseAddress("0x400102")[0], "_Unk_A802", True)`,
		`createLabel(currentProgram.parseAddress("0x400768")[0], "_Stub", True)`,
	})
	test.ExpectSuccess(t, dec.Exhausted())
}

func TestWriteLabelsMalformed(t *testing.T) {
	tw := &test.CompareWriter{}
	dec := traps.NewDecoderAt([]byte{0x81, 0x82}, 0, traps.DefaultConfig)
	n, err := traps.WriteLabels(tw, dec, traps.Names{}, traps.DefaultConfig)
	test.ExpectSuccess(t, curated.Is(err, traps.MalformedTable))
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 2)
}

func TestUnknownName(t *testing.T) {
	test.ExpectEquality(t, traps.UnknownName(0xa0ff), "_Unk_A0FF")
}
