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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jetsetilly/romshift/archivefs"
	"github.com/jetsetilly/romshift/curated"
)

// Sentinal patterns for errors returned by the package.
const (
	HashMismatch   = "imageloader: unexpected hash value for %s (%s)"
	WouldOverwrite = "imageloader: output file is the same as the input file (%s)"
	InArchive      = "imageloader: output file cannot be inside an archive (%s)"
	Abandoned      = "imageloader: writing abandoned (%s)"
)

// Loader is used to specify the image to load.
type Loader struct {
	// filename of image to load. can be a URL with the http or https scheme
	Filename string

	// expected SHA-1 of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. patches are applied directly to this slice
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, hash string) Loader {
	return Loader{
		Filename: filename,
		Hash:     strings.ToLower(strings.TrimSpace(hash)),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := filepath.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, filepath.Ext(ld.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

func (ld Loader) scheme() string {
	u, err := url.Parse(ld.Filename)
	if err != nil {
		return "file"
	}

	// single letter schemes are windows drive letters
	if len(u.Scheme) <= 1 {
		return "file"
	}

	return u.Scheme
}

// Load the image data. Calling Load() more than once has no effect.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	var err error

	switch ld.scheme() {
	case "http":
		fallthrough
	case "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("imageloader: %v", fmt.Sprintf("%s (%s)", resp.Status, ld.Filename))
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}

	case "file":
		ld.Data, err = archivefs.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}

	default:
		return curated.Errorf("imageloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", ld.scheme()))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(HashMismatch, ld.Filename, hash)
	}

	ld.Hash = hash

	return nil
}

// Write data to the output file. The output file is replaced if it exists
// but it can not be the file that was loaded.
//
// The data is first written to a temporary file in the same directory as the
// output and then renamed, so an incomplete output file is never left behind.
func (ld Loader) Write(output string, data []byte) error {
	if ld.scheme() == "file" {
		in, err := filepath.Abs(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		out, err := filepath.Abs(output)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		if in == out {
			return curated.Errorf(WouldOverwrite, output)
		}
	}

	var afs archivefs.Path
	if err := afs.Set(filepath.Dir(output)); err == nil {
		inArchive := afs.InArchive()
		afs.Close()
		if inArchive {
			return curated.Errorf(InArchive, output)
		}
	}

	f, err := createTemp(output)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer release(tmp)

	// temporary files are created with restricted permissions
	err = f.Chmod(0o644)
	if err == nil {
		_, err = f.Write(data)
	}
	if err == nil {
		err = f.Close()
	} else {
		_ = f.Close()
	}
	if err != nil {
		_ = os.Remove(tmp)
		return curated.Errorf("imageloader: %v", err)
	}

	if err := os.Rename(tmp, output); err != nil {
		_ = os.Remove(tmp)
		return curated.Errorf("imageloader: %v", err)
	}

	return nil
}

// temporary files that have not yet been renamed into place
var pending struct {
	sync.Mutex
	files     map[string]bool
	abandoned bool
}

func createTemp(output string) (*os.File, error) {
	pending.Lock()
	defer pending.Unlock()

	if pending.abandoned {
		return nil, curated.Errorf(Abandoned, output)
	}

	f, err := os.CreateTemp(filepath.Dir(output), ".romshift-*")
	if err != nil {
		return nil, curated.Errorf("imageloader: %v", err)
	}

	if pending.files == nil {
		pending.files = make(map[string]bool)
	}
	pending.files[f.Name()] = true

	return f, nil
}

func release(tmp string) {
	pending.Lock()
	defer pending.Unlock()
	delete(pending.files, tmp)
}

// Abandon removes the temporary files of any Write() that is in progress.
// The output of an abandoned Write() is never renamed into place and every
// subsequent call to Write() fails.
//
// Used when the program is interrupted.
func Abandon() {
	pending.Lock()
	defer pending.Unlock()

	pending.abandoned = true
	for tmp := range pending.files {
		_ = os.Remove(tmp)
	}
	pending.files = nil
}
