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

// Package patch applies offset patches to a rom.Image. An offset patch is an
// ordered list of operations, each of which writes a run of bytes to a fixed
// offset in the image. Operations are applied in order and where two
// operations overlap the later one wins.
//
// The JSON form of a patch, as delivered by the randomizer service, is a list
// of single entry objects. The key of each object is a decimal offset and the
// value is the list of bytes to write:
//
//	[{"1573397":[1,2,3,4,5]},{"100":[255]}]
//
// Operations implements json.Unmarshaler and json.Marshaler for that form.
//
// Binary diff patches are handled by the sub-package bps.
package patch
