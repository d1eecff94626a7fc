// This file is part of pyz3r.
//
// pyz3r is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pyz3r is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pyz3r.  If not, see <https://www.gnu.org/licenses/>.

// Package paths prepares paths to pyz3r resources, such as the preferences
// file and the cache of base ROM images.
//
// The ResourcePath() function prepends the resource with the appropriate
// configuration directory:
//
//	p := paths.ResourcePath("", "preferences")
//
// If a directory called ".pyz3r" exists in the current directory then that
// is the base path. Otherwise the base path is the "pyz3r" directory in the
// user's config directory, as reported by os.UserConfigDir(). On a Linux
// system the example above returns:
//
//	/home/user/.config/pyz3r/preferences
//
// ResourcePath() does not create any directories.
package paths
