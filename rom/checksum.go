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

// the checksum pair is stored as complement (lo, hi) followed by checksum (lo,
// hi) at this offset.
const checksumOffset = 0x7fdc

// bytes in the range [sumExcludeStart, sumExcludeEnd) are not included in the
// sum of bytes. the range covers the header version byte and the checksum pair
const (
	sumExcludeStart = 0x7fdb
	sumExcludeEnd   = 0x7fe0
)

// the checksum pair is excluded from the sum. a correct pair always sums to
// 0xff+0xff so that value is added in its place
const pairSum = 0x1fe

// Checksum returns the checksum and its complement for the image as it
// currently is.
func Checksum(img *Image) (checksum uint16, inverse uint16) {
	var sum int

	n := sumExcludeStart
	if n > len(img.data) {
		n = len(img.data)
	}
	for _, v := range img.data[:n] {
		sum += int(v)
	}

	if len(img.data) > sumExcludeEnd {
		for _, v := range img.data[sumExcludeEnd:] {
			sum += int(v)
		}
	}

	checksum = uint16((sum + pairSum) & 0xffff)
	inverse = checksum ^ 0xffff

	return checksum, inverse
}

// Finalise writes the checksum and complement to the image. Every change to
// the image after Finalise() invalidates the checksum so it must be the last
// write to the image.
func (img *Image) Finalise() error {
	checksum, inverse := Checksum(img)
	err := img.WriteBytesAt(checksumOffset, []byte{
		byte(inverse),
		byte(inverse >> 8),
		byte(checksum),
		byte(checksum >> 8),
	})
	if err != nil {
		return curated.Errorf("rom: checksum: %v", err)
	}
	return nil
}
