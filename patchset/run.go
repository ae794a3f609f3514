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
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/romshift/curated"
	"github.com/jetsetilly/romshift/imageloader"
	"github.com/jetsetilly/romshift/logger"
	"github.com/jetsetilly/romshift/patch"
	"github.com/jetsetilly/romshift/statsview"
)

// Site is a location in the image that has been patched.
type Site struct {
	Kind   patch.Kind
	Offset int

	// the resource the site belongs to. empty if the patch is not relative
	// to a resource
	Resource string
}

// Result of a successful Run().
type Result struct {
	Name   string
	Output string

	// SHA-1 of the input and of the output
	InputHash  string
	OutputHash string

	Sites []Site
}

// Recoverable returns true if the error returned by Run() means that the set
// could not be applied but that other sets can still be run. This is the case
// when a resource cannot be located.
func Recoverable(err error) bool {
	return curated.Has(err, patch.NotFound) || curated.Has(err, patch.Ambiguous)
}

func hash(data []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(data))
}

// runner applies the patches of a set to a single buffer.
type runner struct {
	set   *Set
	data  []byte
	perm  logger.Permission
	sites []Site
}

func (r *runner) apply(idx int, p Patch, offset int, resource string) error {
	d := p.Descriptor.Relocate(offset)

	rep, err := patch.Apply(r.data, d)

	// sites are recorded even on error. the buffer is discarded in that
	// case but the log shows how far patching got
	for _, s := range rep.Sites {
		r.sites = append(r.sites, Site{Kind: rep.Kind, Offset: s, Resource: resource})
		logger.Logf(r.perm, "patchset", "%s: %v patch at 0x%04x", r.set.Name, rep.Kind, s)
	}

	if err != nil {
		if resource != "" {
			return curated.Errorf("resource %s: patch %d: %v", resource, idx, err)
		}
		return curated.Errorf("patch %d: %v", idx, err)
	}

	if p.Expect >= 0 && len(rep.Sites) != p.Expect {
		return curated.Errorf(UnexpectedCount, r.set.Name, idx, len(rep.Sites), p.Expect)
	}

	return nil
}

// Run is a single unit of work. The input file is loaded, every patch in the
// set is applied, and the output file is written. If any patch cannot be
// applied then the output file is not written.
//
// Log entries for each patched site are created if perm allows.
func Run(set *Set, perm logger.Permission) (Result, error) {
	res := Result{
		Name:   set.Name,
		Output: set.Output,
	}

	ld := imageloader.NewLoader(set.Input, set.Hash)
	if err := ld.Load(); err != nil {
		return res, curated.Errorf(SetError, set.Name, err)
	}
	res.InputHash = ld.Hash

	logger.Logf(logger.Allow, "patchset", "%s: loaded %s (%d bytes)", set.Name, set.Input, len(ld.Data))

	r := runner{
		set:  set,
		data: ld.Data,
		perm: perm,
	}

	for i, p := range set.Patches {
		if err := r.apply(i, p, 0, ""); err != nil {
			return res, curated.Errorf(SetError, set.Name, err)
		}
	}

	for _, rs := range set.Resources {
		sig := rs.Locate.Signature().String()

		offset, err := patch.Find(r.data, rs.Locate)
		if err != nil {
			return res, curated.Errorf(SetError, set.Name, err)
		}
		logger.Logf(logger.Allow, "patchset", "%s: resource %s at 0x%04x", set.Name, sig, offset)

		for i, p := range rs.Patches {
			if err := r.apply(i, p, offset, sig); err != nil {
				return res, curated.Errorf(SetError, set.Name, err)
			}
		}
	}

	if err := ld.Write(set.Output, r.data); err != nil {
		return res, curated.Errorf(SetError, set.Name, err)
	}

	res.Sites = r.sites
	res.OutputHash = hash(r.data)

	logger.Logf(logger.Allow, "patchset", "%s: %d sites patched, written to %s", set.Name, len(res.Sites), set.Output)

	return res, nil
}

// RunAll runs each set in turn. A set that fails with a recoverable error is
// skipped and the next set is run. Any other error stops the run and is
// returned along with the results of the sets that completed.
func RunAll(sets []*Set, perm logger.Permission) ([]Result, error) {
	results := make([]Result, 0, len(sets))

	for _, s := range sets {
		res, err := Run(s, perm)
		if err != nil {
			if Recoverable(err) {
				logger.Logf(logger.Allow, "patchset error", "skipping %s: %v", s.Name, err)
				statsview.Record(0, true)
				continue // for loop
			}
			return results, err
		}
		statsview.Record(len(res.Sites), false)
		results = append(results, res)
	}

	return results, nil
}
