// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths for Hode resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory.
//
// The default config directory is dependent on the build tag. A release build
// will use the user's configuration directory (see os.UserConfigDir()). A
// non-release build uses the ".hode" directory in the current working
// directory.
//
// The subPth argument is a directory path inside the config directory. The
// directory will be created if it does not already exist. The file argument
// is appended to the path but is not created.
package paths
