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

import "github.com/tcprescott/pyz3r/curated"

// MB is the number of bytes in a megabyte as used for image sizes.
const MB = 1024 * 1024

// Expand grows the image to mb megabytes. Any new space is zero filled. It is
// an error to request a size smaller than the current size of the image. A
// request for the current size changes nothing.
func (img *Image) Expand(mb int) error {
	target := mb * MB
	if len(img.data) > target {
		return curated.Errorf(ShrinkNotAllowed, mb, len(img.data))
	}

	if target == len(img.data) {
		return nil
	}

	d := make([]byte, target)
	copy(d, img.data)
	img.data = d

	return nil
}
