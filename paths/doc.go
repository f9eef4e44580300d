// This file is part of Perfmark.
//
// Perfmark is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Perfmark is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Perfmark.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to perfmark resources.
//
// The ResourcePath() function prepends the supplied resource with the base
// resource path. For example, the following returns the path to the default
// configuration file.
//
//	fn := paths.ResourcePath("config.yaml")
//
// If the directory ".perfmark" is present in the current directory then that
// is the base path. Otherwise the base path is ".perfmark" in the user's home
// directory.
package paths
