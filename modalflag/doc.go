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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes to command line handling, each mode with its own set of
// flags. Romshift uses it to select between its modes of operation:
//
//	romshift TRAPS -names trap_names.txt ROM
//	romshift PATCH -log sets.yaml
//
// Arguments are given to the Modes type with NewArgs(). The modes available at
// the top level are added with AddSubModes(), the first of which is the
// default mode. Flags are added with the Add*() functions, which return a
// pointer to the value in the same way as the flag package.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TRAPS", "PATCH")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After a successful Parse() the Mode() function says which mode has been
// selected. A mode can then start a new layer of flags with NewMode():
//
//	switch md.Mode() {
//	case "TRAPS":
//		md.NewMode()
//		base := md.AddHex("base", 0x400000, "address of ROM in memory")
//		p, err := md.Parse()
//		...
//		decode(md.GetArg(0), *base)
//	}
//
// Mode comparisons are case insensitive and modes can be nested to any depth.
// Arguments that are not flags or mode selectors are available with
// RemainingArgs() and GetArg().
//
// The -help flag is handled by Parse(). The help message lists the flags and
// sub-modes for the current mode, followed by any text given to
// AdditionalHelp().
package modalflag
