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

// Package paths prepares paths to romshift resource files, such as the default
// trap names file.
//
// ResourcePath() prepends the path of the resource directory to a resource
// name. For example, the following returns the path to the trap names file:
//
//	pth, err := paths.ResourcePath("", "trap_names.txt")
//
// In development builds the resource directory is ".romshift" in the current
// directory. In release builds (built with the release tag) the directory is
// "romshift" in the user's config directory, as returned by os.UserConfigDir().
// On a modern Linux system that path will be:
//
//	/home/user/.config/romshift/trap_names.txt
//
// The existence of the resource is not checked.
package paths
