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

// Package session runs the patching pipeline. A Session is created with the
// base image and the seed metadata and the Run() function produces the
// patched image. The stages of the pipeline are always run in this order:
//
//	bps        the base patch replaces the image
//	expand     the image grows to the size requested by the seed
//	patch      the seed's offset patches
//	features   the feature options
//	sprite     the sprite, if there is one
//	checksum   the checksum is calculated and written
//
// The order matters. The base patch assumes an image of the original size,
// the seed's patches can address space beyond the original size and the
// checksum depends on every byte written before it.
//
// Any failure ends the run and the partially patched image is discarded.
// The exception is a failure in the sprite stage when SkipSpriteErrors is
// set, in which case the sprite is not changed and the run continues.
package session
