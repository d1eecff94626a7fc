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

// Package sprite replaces the player character's graphics in an image with
// the contents of a sprite file.
//
// Two sprite file formats are supported. The ZSPR format begins with the
// magic "ZSPR" and carries pointers to the graphics and palette data, along
// with the name of the sprite and of its author. The older SPR format has no
// header and the data is at fixed offsets.
//
// If the image has space reserved for the sprite author's name on the
// credits screen, the short author name from a ZSPR file is encoded with
// the image's glyph table and written there. The glyph table depends on the
// revision of the image.
package sprite
