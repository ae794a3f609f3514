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

package logger

import (
	"io"
	"strings"
)

// CSI sequences used by the Colorizer.
const (
	normalPen = "\033[0m"
	tagPen    = "\033[36m"
	errorPen  = "\033[1;31m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is shown in its own color. Entries with a tag ending in "error" are
// shown entirely in red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimSuffix(string(p), "\n")
	if s == "" {
		return len(p), nil
	}

	b := strings.Builder{}
	for _, l := range strings.Split(s, "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		switch {
		case !ok:
			b.WriteString(l)
		case strings.HasSuffix(tag, "error"):
			b.WriteString(errorPen)
			b.WriteString(l)
			b.WriteString(normalPen)
		default:
			b.WriteString(tagPen)
			b.WriteString(tag)
			b.WriteString(normalPen)
			b.WriteString(": ")
			b.WriteString(detail)
		}
		b.WriteString("\n")
	}

	_, err = io.WriteString(c.out, b.String())
	if err != nil {
		return 0, err
	}

	// report the number of bytes from p that were consumed, not the number of
	// bytes written to the underlying writer
	return len(p), nil
}

// EchoWriter returns a writer suitable for SetEcho(). If the file is a
// terminal then the output is colorized.
func EchoWriter(f Fd) io.Writer {
	if IsTerminal(f) {
		return NewColorizer(f)
	}
	return f
}
