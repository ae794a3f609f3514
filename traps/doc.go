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

// Package traps decodes the compact trap table found in the 68k ROM.
//
// The trap table maps a dense index to the absolute address of the code that
// services the trap. Rather than a list of 32bit addresses, the table is a
// sequence of variable length entries, each one adjusting a running pointer:
//
//	0x80              the "unimplemented" function. the running pointer is
//	                  not changed
//	0xff aa aa aa aa  absolute entry. the pointer is set to the 32bit
//	                  big-endian value plus the ROM base address
//	1nnnnnnn          short relative entry. the pointer is advanced by
//	                  nnnnnnn words
//	0s nnnnnn nnnnnnnn long relative entry. a 16bit big-endian word count with
//	                  bit 0x4000 acting as the sign. a value of zero ends the
//	                  table
//
// The Step() function performs a single decode step on an explicit State
// value. The Decoder type wraps Step() and provides the decoded entries as a
// lazy sequence, in the manner of bufio.Scanner:
//
//	dec, err := traps.NewDecoder(rom, traps.DefaultConfig)
//	if err != nil {
//		return err
//	}
//	for dec.Next() {
//		e := dec.Entry()
//		fmt.Printf("%04x %06x\n", traps.IndexToTrap(e.Index), e.Address)
//	}
//	if dec.Err() != nil {
//		return dec.Err()
//	}
//
// The index of an entry is converted to a trap number with IndexToTrap() and
// back again with TrapToIndex().
//
// ReadNames() and WriteLabels() support the labelling of decoded addresses in
// an external disassembler.
package traps
