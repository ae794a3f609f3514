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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern, not the formatted
// message, identifies the error. Packages export the patterns they use as
// constants so that callers can ask what went wrong without comparing
// message text:
//
//	const ContentMismatch = "patch: content mismatch at 0x%04x (expected % x, found % x)"
//
//	err := curated.Errorf(ContentMismatch, addr, before, actual)
//
//	if curated.Is(err, ContentMismatch) {
//		fmt.Println("wrong ROM revision")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is formed by passing an error as one of the values
// to Errorf():
//
//	f := curated.Errorf("patchset: %s: %v", name, err)
//
//	curated.Has(f, ContentMismatch) // true
//	curated.Is(f, ContentMismatch)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of curated errors as 'expected' errors and all
// others as 'unexpected'.
//
// The Error() function normalises the error chain. Adjacent parts that are
// the same are removed, so that wrapping an error with the same package
// prefix does not produce messages like:
//
//	patch: patch: content mismatch at 0x0005
//
// Parts are separated by the sub-string ": " as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// A non-curated error passed as a value can be retrieved with the Unwrap()
// function of the errors package, meaning that errors.Is() continues to work
// for errors like fs.ErrNotExist.
package curated
