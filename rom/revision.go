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

package rom

import "fmt"

// location of the little-endian revision field.
const revisionOffset = 0x7fe2

// Revision is the cartridge build version as written by the randomizer.
type Revision int

// RevisionExtended is the first revision with the extended heart colour
// selector and the extended set of author glyphs.
const RevisionExtended Revision = 4

// Legacy returns true if the revision predates RevisionExtended.
func (r Revision) Legacy() bool {
	return r < RevisionExtended
}

func (r Revision) String() string {
	return fmt.Sprintf("v%d", int(r))
}

// Revision returns the revision of the image. Images that predate versioning
// have 0xffff in the revision field; that is reported as revision zero. An
// image too small to contain the field is also revision zero.
func (img *Image) Revision() Revision {
	if !img.InBounds(revisionOffset, 2) {
		return 0
	}
	v := uint16(img.data[revisionOffset]) | uint16(img.data[revisionOffset+1])<<8
	if v == 0xffff {
		return 0
	}
	return Revision(v)
}
