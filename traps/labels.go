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

import (
	"fmt"
	"io"

	"github.com/jetsetilly/romshift/curated"
)

// the script line that creates a label in the disassembler.
const labelFormat = "createLabel(currentProgram.parseAddress(\"0x%06X\")[0], \"%s\", True)\n"

// UnknownName returns the label used for a trap that has no name.
func UnknownName(trap uint16) string {
	return fmt.Sprintf("_Unk_%04X", trap)
}

// WriteLabels consumes the remaining entries from the decoder and writes a
// label script line for each one. Entries that decode to the unimplemented
// function and which have no name are skipped.
//
// Returns the number of labels written.
func WriteLabels(w io.Writer, dec *Decoder, names Names, cfg Config) (int, error) {
	n := 0

	for dec.Next() {
		e := dec.Entry()

		name, ok := names.Name(e.Index)
		if !ok {
			if e.Address == cfg.Unimplemented {
				continue // for loop
			}
			name = UnknownName(e.Trap())
		}

		if _, err := fmt.Fprintf(w, labelFormat, e.Address, name); err != nil {
			return n, curated.Errorf("traps: labels: %v", err)
		}
		n++
	}

	if dec.Err() != nil {
		return n, dec.Err()
	}

	return n, nil
}
