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

// Package rom holds the cartridge image being patched. The Image type is an
// owned byte buffer with bounds checked read and write primitives. Writes can
// never grow the buffer; the only way the image grows is with Expand().
//
// The package also knows about the fixed locations in a LoROM image that the
// rest of the program depends on: the two byte revision field, the internal
// header and the checksum/complement pair. The Finalise() function computes
// and writes the checksum and must be the final write to an image before it
// is serialised.
package rom
