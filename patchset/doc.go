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

// Package patchset loads declarative patch sets from YAML data files and
// applies them to image files.
//
// A data file contains a list of sets. Each set is a unit of work: one input
// file is read, patched, and written to one output file. For example:
//
//	sets:
//	  - name: rom
//	    description: relocate ROM from 0x400000 to 0xf80000
//	    input: ROM.sefdhd
//	    output: ROM.patched
//	    sha1: 0123456789abcdef0123456789abcdef01234567
//	    patches:
//	      - exact: {address: 0x00004+1, before: "40", after: "f8"}
//	      - array: {start: 0x019ed, end: 0x01ae5, stride: 4, before: "40", after: "f8"}
//	      - pattern: {find: "4e f9 00 40", replace: "4e f9 00 f8", expect: 3}
//	    resources:
//	      - prefix: "00 00 00 1c"
//	        type: CODE
//	        id: 1
//	        patches:
//	          - exact: {address: 0x0104, before: "40", after: "f8"}
//
// Byte strings are written in hex, with or without spaces. Addresses are
// decimal or hex and can be written as a sum, which is useful when the address
// of an instruction is known and the patch is to one of its operands.
//
// The addresses of patches listed under a resource are relative to the
// location of the resource signature in the image.
//
// Input and output filenames are relative to the directory containing the
// data file.
//
// A set is applied with Run(). The output file is written only if every patch
// in the set has been applied successfully. RunAll() runs several sets and
// skips any set with a resource that cannot be located.
package patchset
