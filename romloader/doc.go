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

// Package romloader loads and verifies the base ROM image. The base ROM is
// the unmodified Japan 1.0 release of the game, without a copier header.
//
// The Load() function handles loading from different sources. Currently
// local files and data over HTTP are supported. A copier header, if present,
// is removed before the SHA-256 hash of the data is compared with the
// expected hash.
//
// The simplest use of the Loader type:
//
//	rl := romloader.NewLoader("roms/zelda.sfc")
//	err := rl.Load()
//	if curated.Is(err, romloader.ChecksumMismatch) {
//		...
//	}
//
// The Fetch() function uses the same sources to load other files, such as
// sprites and patches.
package romloader
