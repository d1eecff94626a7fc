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

package patch

import (
	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/rom"
)

// Apply writes each operation to the image in order. Apply stops at the first
// operation that cannot be written and returns an error naming the
// operation's index. Operations before the failing one will have been
// applied. There is no rollback. The caller should discard the image.
func Apply(img *rom.Image, ops Operations) error {
	for i, op := range ops {
		err := img.WriteBytesAt(op.Offset, op.Values)
		if err != nil {
			return curated.Errorf(Failed, i, err)
		}
	}
	return nil
}
