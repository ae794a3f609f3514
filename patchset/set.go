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

package patchset

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romshift/curated"
	"github.com/jetsetilly/romshift/patch"
	"gopkg.in/yaml.v3"
)

// Sentinal patterns for errors returned by the package.
const (
	DataError       = "patchset: %v"
	SetError        = "patchset: %s: %v"
	UnexpectedCount = "patchset: %s: patch %d: %d occurrences of pattern (expected %d)"
	UnknownSet      = "patchset: no set named %s"
)

// Patch is a single patch in a set.
type Patch struct {
	Description string
	Descriptor  patch.Descriptor

	// the number of sites a pattern patch is expected to touch. a value of
	// -1 means any number of sites (including none) is acceptable
	Expect int
}

func (p Patch) String() string {
	if p.Description == "" {
		return p.Descriptor.String()
	}
	return fmt.Sprintf("%s (%s)", p.Descriptor, p.Description)
}

// Resource is a list of patches with addresses relative to the location of
// the resource signature.
type Resource struct {
	Description string
	Locate      patch.Descriptor
	Patches     []Patch
}

// Set is a list of patches to be applied to one input file.
type Set struct {
	Name        string
	Description string

	// Input and Output filenames have been resolved relative to the data file
	Input  string
	Output string

	// expected SHA-1 of the input. may be empty
	Hash string

	Patches   []Patch
	Resources []Resource
}

// LoadFile loads the sets in the named data file.
func LoadFile(filename string) ([]*Set, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DataError, err)
	}
	defer f.Close()

	return Load(f, filepath.Dir(filename))
}

// Load the sets from the data file. Relative filenames are resolved against
// dir.
func Load(r io.Reader, dir string) ([]*Set, error) {
	var file fileNode

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, curated.Errorf(DataError, "no sets in data file")
		}
		return nil, curated.Errorf(DataError, err)
	}

	if len(file.Sets) == 0 {
		return nil, curated.Errorf(DataError, "no sets in data file")
	}

	sets := make([]*Set, 0, len(file.Sets))
	names := make(map[string]bool)

	for i, n := range file.Sets {
		if n.Name == "" {
			return nil, curated.Errorf(DataError, fmt.Sprintf("set %d has no name", i))
		}
		if names[n.Name] {
			return nil, curated.Errorf(DataError, fmt.Sprintf("duplicate set name (%s)", n.Name))
		}
		names[n.Name] = true

		set, err := newSet(n, dir)
		if err != nil {
			return nil, curated.Errorf(SetError, n.Name, err)
		}
		sets = append(sets, set)
	}

	return sets, nil
}

// resolve returns the filename relative to dir. URLs and absolute filenames
// are not changed.
func resolve(dir string, filename string) string {
	if u, err := url.Parse(filename); err == nil && len(u.Scheme) > 1 {
		return filename
	}
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dir, filename)
}

func newSet(n setNode, dir string) (*Set, error) {
	if n.Input == "" {
		return nil, curated.Errorf("no input file")
	}
	if n.Output == "" {
		return nil, curated.Errorf("no output file")
	}

	set := &Set{
		Name:        n.Name,
		Description: n.Description,
		Input:       resolve(dir, n.Input),
		Output:      resolve(dir, n.Output),
		Hash:        strings.ToLower(strings.TrimSpace(n.SHA1)),
	}

	if set.Input == set.Output {
		return nil, curated.Errorf("input and output are the same file (%s)", n.Input)
	}

	for i, p := range n.Patches {
		d, err := newPatch(p, true)
		if err != nil {
			return nil, curated.Errorf("patch %d: %v", i, err)
		}
		set.Patches = append(set.Patches, d)
	}

	for i, r := range n.Resources {
		sig, err := patch.NewSignature(r.Prefix, r.Type, r.ID)
		if err != nil {
			return nil, curated.Errorf("resource %d: %v", i, err)
		}

		res := Resource{
			Description: r.Description,
			Locate:      patch.NewLocate(sig),
		}

		for j, p := range r.Patches {
			d, err := newPatch(p, false)
			if err != nil {
				return nil, curated.Errorf("resource %s: patch %d: %v", sig, j, err)
			}
			res.Patches = append(res.Patches, d)
		}

		set.Resources = append(set.Resources, res)
	}

	return set, nil
}

// newPatch converts the node to a Patch. Pattern patches are not allowed when
// addresses are relative to a resource because a pattern is searched for
// throughout the image.
func newPatch(n patchNode, allowPattern bool) (Patch, error) {
	c := 0
	for _, v := range []bool{n.Exact != nil, n.Pattern != nil, n.Array != nil} {
		if v {
			c++
		}
	}
	if c == 0 {
		return Patch{}, curated.Errorf("no patch type specified")
	}
	if c > 1 {
		return Patch{}, curated.Errorf("multiple patch types specified")
	}

	p := Patch{
		Description: n.Description,
		Expect:      -1,
	}

	switch {
	case n.Exact != nil:
		p.Descriptor = patch.NewExact(int(n.Exact.Address), n.Exact.Before, n.Exact.After)

	case n.Pattern != nil:
		if !allowPattern {
			return Patch{}, curated.Errorf("pattern patches cannot be relative to a resource")
		}
		p.Descriptor = patch.NewPattern(n.Pattern.Find, n.Pattern.Replace)
		if n.Pattern.Expect != nil {
			if *n.Pattern.Expect < 0 {
				return Patch{}, curated.Errorf("expected number of occurrences cannot be negative")
			}
			p.Expect = *n.Pattern.Expect
		}

	case n.Array != nil:
		p.Descriptor = patch.NewArray(int(n.Array.Start), int(n.Array.End), n.Array.Stride, n.Array.Before, n.Array.After)
	}

	// catch errors in the description of the patch before anything is patched
	if err := p.Descriptor.Validate(); err != nil {
		return Patch{}, err
	}

	return p, nil
}

// Select returns the sets with the given names, in the order the names are
// given. If no names are given then all sets are returned.
func Select(sets []*Set, names ...string) ([]*Set, error) {
	if len(names) == 0 {
		return sets, nil
	}

	sel := make([]*Set, 0, len(names))
	for _, n := range names {
		var found *Set
		for _, s := range sets {
			if strings.EqualFold(s.Name, n) {
				found = s
				break // for loop
			}
		}
		if found == nil {
			return nil, curated.Errorf(UnknownSet, n)
		}
		sel = append(sel, found)
	}

	return sel, nil
}
