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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// hexValue implements the flag.Value interface for addresses. Addresses are
// usually written in hex so a value without a prefix is also read as hex.
type hexValue uint32

func (v *hexValue) String() string {
	if v == nil {
		return "0x0"
	}
	return fmt.Sprintf("%#x", uint32(*v))
}

func (v *hexValue) Set(s string) error {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	}

	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("not a 32 bit hex value")
	}

	*v = hexValue(n)
	return nil
}
