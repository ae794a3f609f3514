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

package patch

import (
	"fmt"

	"github.com/jetsetilly/romshift/curated"
)

// Kind identifies the type of patch described by a Descriptor.
type Kind int

// List of valid Kind values.
const (
	Exact Kind = iota
	Pattern
	Array
	Locate
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Pattern:
		return "pattern"
	case Array:
		return "array"
	case Locate:
		return "locate"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Descriptor is a declarative description of a patch. Only the fields
// relevant to the Kind are used.
type Descriptor struct {
	kind Kind

	// exact: the patch address. array: the first address
	address int

	// array only. end is inclusive
	end    int
	stride int

	// exact and array: the expected bytes and the replacement bytes
	// pattern: the pattern and the replacement bytes
	before []byte
	after  []byte

	// locate only
	sig Signature
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// NewExact creates a Descriptor for an exact patch.
func NewExact(address int, before []byte, after []byte) Descriptor {
	return Descriptor{
		kind:    Exact,
		address: address,
		before:  clone(before),
		after:   clone(after),
	}
}

// NewPattern creates a Descriptor for a pattern patch.
func NewPattern(pattern []byte, replacement []byte) Descriptor {
	return Descriptor{
		kind:   Pattern,
		before: clone(pattern),
		after:  clone(replacement),
	}
}

// NewArray creates a Descriptor for an array patch.
func NewArray(start int, end int, stride int, before []byte, after []byte) Descriptor {
	return Descriptor{
		kind:    Array,
		address: start,
		end:     end,
		stride:  stride,
		before:  clone(before),
		after:   clone(after),
	}
}

// NewLocate creates a Descriptor for a resource signature.
func NewLocate(sig Signature) Descriptor {
	return Descriptor{
		kind: Locate,
		sig:  sig,
	}
}

// Kind returns the kind of patch described.
func (d Descriptor) Kind() Kind {
	return d.kind
}

// Address returns the patch address of an exact patch or the first address
// of an array patch.
func (d Descriptor) Address() int {
	return d.address
}

// Signature returns the signature of a locate descriptor.
func (d Descriptor) Signature() Signature {
	return d.sig
}

// Sites returns the number of sites an exact or array patch will touch. The
// number of sites a pattern patch will touch depends on the buffer and the
// function returns -1.
func (d Descriptor) Sites() int {
	switch d.kind {
	case Exact:
		return 1
	case Array:
		return ArraySites(d.address, d.end, d.stride)
	case Pattern:
		return -1
	}
	return 0
}

// Relocate returns a copy of the descriptor with addresses moved by offset.
// Used when addresses are relative to a resource found in the image. Pattern
// and locate descriptors do not have addresses and are returned unchanged.
func (d Descriptor) Relocate(offset int) Descriptor {
	switch d.kind {
	case Exact:
		d.address += offset
	case Array:
		d.address += offset
		d.end += offset
	}
	return d
}

// Validate checks the descriptor for errors that do not depend on the image
// being patched.
func (d Descriptor) Validate() error {
	switch d.kind {
	case Exact:
		if len(d.before) == 0 || len(d.after) > len(d.before) {
			return curated.Errorf(LengthMismatch, len(d.before), len(d.after))
		}
	case Array:
		if d.stride <= 0 {
			return curated.Errorf(InvalidStride, d.stride)
		}
		if len(d.before) == 0 || len(d.after) > len(d.before) {
			return curated.Errorf(LengthMismatch, len(d.before), len(d.after))
		}
	case Pattern:
		if len(d.before) == 0 || len(d.before) != len(d.after) {
			return curated.Errorf(LengthMismatch, len(d.before), len(d.after))
		}
	case Locate:
	default:
		return curated.Errorf("patch: unknown kind (%v)", d.kind)
	}
	return nil
}

func (d Descriptor) String() string {
	switch d.kind {
	case Exact:
		return fmt.Sprintf("exact 0x%04x [% x] -> [% x]", d.address, d.before, d.after)
	case Pattern:
		return fmt.Sprintf("pattern [% x] -> [% x]", d.before, d.after)
	case Array:
		return fmt.Sprintf("array 0x%04x-0x%04x/%d [% x] -> [% x]", d.address, d.end, d.stride, d.before, d.after)
	case Locate:
		return fmt.Sprintf("locate %s", d.sig)
	}
	return d.kind.String()
}

// Report lists the sites touched by Apply().
type Report struct {
	Kind  Kind
	Sites []int
}

// Apply the patch described by the descriptor to the buffer. Locate
// descriptors cannot be applied, use Find() instead.
//
// In the case of an error the Report contains the sites that were patched
// before the error occurred.
func Apply(buf []byte, d Descriptor) (Report, error) {
	r := Report{Kind: d.kind}

	switch d.kind {
	case Exact:
		addr, err := ApplyExact(buf, d.address, d.before, d.after)
		if err != nil {
			return r, err
		}
		r.Sites = []int{addr}

	case Pattern:
		sites, err := ApplyPattern(buf, d.before, d.after)
		if err != nil {
			return r, err
		}
		r.Sites = sites

	case Array:
		sites, err := ApplyArray(buf, d.address, d.end, d.stride, d.before, d.after)
		r.Sites = sites
		if err != nil {
			return r, err
		}

	default:
		return r, curated.Errorf("patch: %v descriptors do not modify the image", d.kind)
	}

	return r, nil
}

// Find performs the search described by a locate descriptor and returns the
// offset of the resource.
func Find(buf []byte, d Descriptor) (int, error) {
	if d.kind != Locate {
		return 0, curated.Errorf("patch: %v descriptors cannot be used to find a resource", d.kind)
	}
	return FindResource(buf, d.sig)
}
