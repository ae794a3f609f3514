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

//go:build windows

package logger

import "io"

// Fd is an io.Writer with a file descriptor. *os.File satisfies the interface.
type Fd interface {
	io.Writer
	Fd() uintptr
}

// IsTerminal always returns false on windows. Log echoing is not colorized.
func IsTerminal(f Fd) bool {
	return false
}
