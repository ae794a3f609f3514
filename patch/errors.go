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

// Sentinal patterns for errors returned by the package.
//
// ContentMismatch, LengthMismatch, OutOfRange and InvalidStride mean that the
// patch is wrong for the image or is badly specified. The buffer should not
// be used after one of these errors.
//
// NotFound and Ambiguous are returned by the resource locator. The buffer has
// not been changed.
const (
	ContentMismatch = "patch: content mismatch at 0x%04x (expected % x, found % x)"
	LengthMismatch  = "patch: length mismatch (%d bytes replaced with %d bytes)"
	OutOfRange      = "patch: span of %d bytes at 0x%04x is outside of image (%d bytes)"
	InvalidStride   = "patch: invalid stride (%d)"
	NotFound        = "patch: resource %s not found"
	Ambiguous       = "patch: resource %s is ambiguous (%d candidates at %s)"
)
