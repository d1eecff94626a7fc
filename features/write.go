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

package features

import (
	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/rom"
)

// a single byte write to the image.
type write struct {
	offset int
	value  byte
}

// commit the writes to the image. the bounds of all writes are checked
// before any write is made.
func commit(img *rom.Image, option string, w []write) error {
	for _, v := range w {
		if !img.InBounds(v.offset, 1) {
			_, err := img.ReadByteAt(v.offset)
			return curated.Errorf(Failed, option, err)
		}
	}
	for _, v := range w {
		if err := img.WriteByteAt(v.offset, v.value); err != nil {
			return curated.Errorf(Failed, option, err)
		}
	}
	return nil
}
