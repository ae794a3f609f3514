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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/romshift/curated"
)

// Sentinal patterns for errors returned by ReadNames().
const (
	BadNameLine   = "traps: names: line %d: %v"
	DuplicateName = "traps: names: line %d: duplicate entry for trap %04X (%s and %s)"
)

// Names maps a table index to the name of the trap.
type Names map[int]string

// Name returns the name for the table entry and whether a name was found.
func (n Names) Name(idx int) (string, bool) {
	s, ok := n[idx]
	return s, ok
}

// ReadNamesFile opens the named file and reads the names with ReadNames().
func ReadNamesFile(filename string) (Names, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("traps: names: %v", err)
	}
	defer f.Close()
	return ReadNames(f)
}

// ReadNames reads trap names. Each line has two fields separated by a comma:
// the trap number in hex and the name of the trap. For example:
//
//	A9A0,_GetResource
//
// Blank lines and lines beginning with '#' are ignored. Any trap number that
// appears more than once is an error, even if the names are the same, because
// it indicates a problem with the names file.
func ReadNames(r io.Reader) (Names, error) {
	names := make(Names)

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++

		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue // for loop
		}

		p := strings.Split(s, ",")
		if len(p) != 2 {
			return nil, curated.Errorf(BadNameLine, ln, "expected two fields")
		}

		trap, err := strconv.ParseUint(strings.TrimSpace(p[0]), 16, 16)
		if err != nil {
			return nil, curated.Errorf(BadNameLine, ln, err)
		}

		name := strings.TrimSpace(p[1])
		if name == "" {
			return nil, curated.Errorf(BadNameLine, ln, "empty name")
		}

		idx := TrapToIndex(uint16(trap))
		if existing, ok := names[idx]; ok {
			return nil, curated.Errorf(DuplicateName, ln, trap, name, existing)
		}
		names[idx] = name
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("traps: names: %v", err)
	}

	return names, nil
}
