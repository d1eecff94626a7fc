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

// Package features applies the cosmetic and quality-of-life options to a
// patched image. Each option is a small write, or set of writes, to a fixed
// location in the image.
//
// Option values are validated against the known set before anything is
// written. The bounds of every write are checked before the first write so
// that a failing option never leaves the image partially changed.
//
// The heart colour option is stored differently depending on the revision of
// the image. Images of revision 4 or later have a single selector byte.
// Earlier images have the palette values written directly into the HUD and
// file select code.
//
// The Options type bundles all options together and can be stored on disk
// with the Preferences type.
package features
