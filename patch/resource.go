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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/romshift/curated"
)

// the length of a resource signature in bytes.
const signatureLen = 10

// Signature identifies a resource in an image where the offset of the
// resource is not otherwise known, for example a resource inside a disk image.
type Signature struct {
	// the four bytes immediately before the type tag
	Prefix [4]byte

	// the resource type. for example, "CODE"
	Type [4]byte

	// the resource ID
	ID uint16
}

// NewSignature is the preferred method of initialisation for the Signature
// type. The prefix must be four bytes long and the type tag four characters
// long.
func NewSignature(prefix []byte, tag string, id uint16) (Signature, error) {
	var sig Signature

	if len(prefix) != len(sig.Prefix) {
		return sig, curated.Errorf("patch: signature prefix must be %d bytes (not %d)", len(sig.Prefix), len(prefix))
	}
	if len(tag) != len(sig.Type) {
		return sig, curated.Errorf("patch: signature type must be %d characters (not %q)", len(sig.Type), tag)
	}

	copy(sig.Prefix[:], prefix)
	copy(sig.Type[:], tag)
	sig.ID = id

	return sig, nil
}

// Needle returns the byte sequence that is searched for: the prefix, the type
// tag and the big-endian ID.
func (sig Signature) Needle() []byte {
	n := make([]byte, signatureLen)
	copy(n[0:], sig.Prefix[:])
	copy(n[4:], sig.Type[:])
	binary.BigEndian.PutUint16(n[8:], sig.ID)
	return n
}

func (sig Signature) String() string {
	return fmt.Sprintf("'%s' #%d", sig.Type[:], sig.ID)
}

// FindResource returns the offset of the resource signature in the buffer. The
// signature must occur exactly once. The buffer is not changed.
func FindResource(buf []byte, sig Signature) (int, error) {
	offsets := Search(buf, sig.Needle())

	switch len(offsets) {
	case 0:
		return 0, curated.Errorf(NotFound, sig)
	case 1:
		return offsets[0], nil
	}

	s := make([]string, len(offsets))
	for i, o := range offsets {
		s[i] = fmt.Sprintf("0x%04x", o)
	}

	return 0, curated.Errorf(Ambiguous, sig, len(offsets), strings.Join(s, ", "))
}
