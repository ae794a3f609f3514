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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Path represents a single destination in the file system, which may be
// inside an archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// zip files always use a forward slash as a separator, regardless of the
	// host OS
	inZipPath string
	inZipFile string
}

// String returns the current path
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the
// Set() function.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Each element of the path is checked in turn. An element that
// is a zip archive is treated as a directory and the elements that follow it
// are looked for inside the archive. Archives inside archives are not
// supported.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			if afs.inZipFile != "" {
				afs.Close()
				return fmt.Errorf("archivefs: set: %s is not a directory", current)
			}

			p := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}
			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
			} else {
				afs.inZipFile = l
			}

			continue // for loop
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue // for loop
		}

		zf, err := zip.OpenReader(current)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.zf = zf
			afs.isDir = true
			continue // for loop
		}

		// a file that is not an archive is fine as long as it is the final
		// element of the path
		if !errors.Is(err, zip.ErrFormat) && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}
	}

	afs.current = filepath.Clean(current)

	return nil
}
