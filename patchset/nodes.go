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
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/romshift/curated"
	"gopkg.in/yaml.v3"
)

// Error patterns for values in the data file. They are reported inside a
// DataError.
const (
	NodeKind        = "line %d: expected %s"
	NodeValue       = "line %d: %v"
	InvalidAddress  = "invalid address %q"
	AddressOverflow = "address out of range %q"
)

// Bytes is a byte string written in hex in the data file. Whitespace between
// bytes is ignored.
type Bytes []byte

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (b *Bytes) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return curated.Errorf(NodeKind, n.Line, "hex string")
	}

	s := strings.Join(strings.Fields(n.Value), "")
	d, err := hex.DecodeString(s)
	if err != nil {
		return curated.Errorf(NodeValue, n.Line, err)
	}

	*b = d
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (b Bytes) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("% x", []byte(b)), nil
}

// Address is an address or offset in the data file. Hex values have the 0x
// prefix. The address can be a sum of values, for example "0x000b8+5".
type Address uint32

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (a *Address) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return curated.Errorf(NodeKind, n.Line, "address")
	}

	v, err := parseAddress(n.Value)
	if err != nil {
		return curated.Errorf(NodeValue, n.Line, err)
	}

	*a = Address(v)
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (a Address) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("0x%04x", uint32(a)), nil
}

func parseAddress(s string) (uint32, error) {
	var sum uint64
	for _, p := range strings.Split(s, "+") {
		p = strings.TrimSpace(p)
		if p == "" {
			return 0, curated.Errorf(InvalidAddress, s)
		}

		// leading zeros are common in hex addresses but a decimal value with
		// a leading zero would be read as octal by ParseUint(). treat those as
		// decimal
		base := 0
		if !strings.HasPrefix(p, "0x") && !strings.HasPrefix(p, "0X") {
			base = 10
		}

		v, err := strconv.ParseUint(p, base, 32)
		if err != nil {
			return 0, curated.Errorf(InvalidAddress, s)
		}

		sum += v
		if sum > 0xffffffff {
			return 0, curated.Errorf(AddressOverflow, s)
		}
	}
	return uint32(sum), nil
}

// the data file as it is written.
type fileNode struct {
	Sets []setNode `yaml:"sets"`
}

type setNode struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Input       string         `yaml:"input"`
	Output      string         `yaml:"output"`
	SHA1        string         `yaml:"sha1,omitempty"`
	Patches     []patchNode    `yaml:"patches,omitempty"`
	Resources   []resourceNode `yaml:"resources,omitempty"`
}

type patchNode struct {
	Description string       `yaml:"description,omitempty"`
	Exact       *exactNode   `yaml:"exact,omitempty,flow"`
	Pattern     *patternNode `yaml:"pattern,omitempty,flow"`
	Array       *arrayNode   `yaml:"array,omitempty,flow"`
}

type exactNode struct {
	Address Address `yaml:"address"`
	Before  Bytes   `yaml:"before"`
	After   Bytes   `yaml:"after"`
}

type patternNode struct {
	Find    Bytes `yaml:"find"`
	Replace Bytes `yaml:"replace"`
	Expect  *int  `yaml:"expect,omitempty"`
}

type arrayNode struct {
	Start  Address `yaml:"start"`
	End    Address `yaml:"end"`
	Stride int     `yaml:"stride"`
	Before Bytes   `yaml:"before"`
	After  Bytes   `yaml:"after"`
}

type resourceNode struct {
	Description string      `yaml:"description,omitempty"`
	Prefix      Bytes       `yaml:"prefix"`
	Type        string      `yaml:"type"`
	ID          uint16      `yaml:"id"`
	Patches     []patchNode `yaml:"patches,omitempty"`
}
