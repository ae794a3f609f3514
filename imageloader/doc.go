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

// Package imageloader reads image files into memory and writes patched images
// back out to new files.
//
// An image is a ROM, a resource file or a disk image. In all cases the image
// is read into memory in one go with the Load() function. Local files, files
// inside zip archives and files served over HTTP are supported:
//
//	ld := imageloader.NewLoader("ROM.sefdhd", "")
//	err := ld.Load()
//
// A file inside an archive is named as though the archive were a directory.
// For example, "images/system6.zip/ROM.sefdhd". See the archivefs package.
//
// The Hash field is the SHA-1 of the loaded data. If the Hash field is set
// before loading then the loaded data must have the same hash. This protects
// against patching the wrong revision of an image before any patch is
// attempted.
//
// Patched data is written with the Write() function, which will never write
// over the file that was loaded and which will not write into an archive.
package imageloader
