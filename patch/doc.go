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

// Package patch locates and rewrites byte sequences in an image buffer.
//
// There are three ways of patching a buffer and one way of searching it:
//
//	ApplyExact()	rewrite the bytes at a fixed address. the existing bytes
//			must match the expected "before" bytes
//	ApplyPattern()	rewrite every occurrence of a byte pattern
//	ApplyArray()	an exact patch repeated at regular intervals
//	FindResource()	locate a resource by its signature
//
// The Descriptor type describes any of the above as a value, to be performed
// by the Apply() or Find() functions. Descriptors are created with the New*()
// functions and are never changed by the package.
//
// The expected "before" bytes protect against applying a patch intended for a
// different revision of the image. A content mismatch is reported as an error
// and the buffer is not changed at the failing site. An array patch stops at
// the first failing site; sites patched before the failure remain patched and
// the buffer should be discarded.
//
// Errors are curated errors and the sentinal patterns are exported so that
// callers can differentiate them with curated.Is() and curated.Has().
package patch
