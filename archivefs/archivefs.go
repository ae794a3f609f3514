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

// Package archivefs allows files inside zip archives to be named as though
// the archive were a directory. Images are often distributed in archives and
// this means that they do not need to be extracted before patching:
//
//	data, err := archivefs.ReadFile("images/system6.zip/ROM.sefdhd")
//
// Paths that do not pass through an archive are opened as normal files.
// Archives cannot be written to.
package archivefs

import "io"

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive supported by archivefs
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors. The caller should close the ReadSeeker if it implements io.Closer.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// ReadFile returns the entire contents of the named file. Filename can be
// inside an archive supported by archivefs.
func ReadFile(filename string) ([]byte, error) {
	r, sz, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	data := make([]byte, sz)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}
