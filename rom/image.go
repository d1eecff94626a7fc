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

import (
	"bytes"

	"github.com/tcprescott/pyz3r/curated"
)

// Image is the byte-for-byte contents of a cartridge. The zero value is an
// empty image.
type Image struct {
	data []byte
}

// Load creates a new Image from a copy of the data. No verification or
// header stripping takes place. That is the job of the romloader package.
func Load(data []byte) *Image {
	img := &Image{
		data: make([]byte, len(data)),
	}
	copy(img.data, data)
	return img
}

// NewImage creates a zero filled Image of the specified size.
func NewImage(size int) *Image {
	return &Image{
		data: make([]byte, size),
	}
}

// Len returns the current size of the image in bytes.
func (img *Image) Len() int {
	return len(img.data)
}

// InBounds returns true if length bytes starting at offset all fall inside
// the image.
func (img *Image) InBounds(offset int, length int) bool {
	return offset >= 0 && length >= 0 && offset <= len(img.data)-length
}

// WriteByteAt writes a single value to the offset.
func (img *Image) WriteByteAt(offset int, value byte) error {
	if !img.InBounds(offset, 1) {
		return curated.Errorf(OutOfBounds, offset, 1, len(img.data))
	}
	img.data[offset] = value
	return nil
}

// WriteBytesAt writes the values to consecutive offsets starting at offset. The
// entire range is checked before any value is written.
func (img *Image) WriteBytesAt(offset int, values []byte) error {
	if !img.InBounds(offset, len(values)) {
		return curated.Errorf(OutOfBounds, offset, len(values), len(img.data))
	}
	copy(img.data[offset:], values)
	return nil
}

// ReadByteAt returns the value at offset.
func (img *Image) ReadByteAt(offset int) (byte, error) {
	if !img.InBounds(offset, 1) {
		return 0, curated.Errorf(OutOfBounds, offset, 1, len(img.data))
	}
	return img.data[offset], nil
}

// ReadBytesAt returns a copy of length bytes starting at offset.
func (img *Image) ReadBytesAt(offset int, length int) ([]byte, error) {
	if !img.InBounds(offset, length) {
		return nil, curated.Errorf(OutOfBounds, offset, length, len(img.data))
	}
	b := make([]byte, length)
	copy(b, img.data[offset:])
	return b, nil
}

// Bytes returns a copy of the image. This is the serialised form of the
// image and Load(img.Bytes()) results in an identical image.
func (img *Image) Bytes() []byte {
	b := make([]byte, len(img.data))
	copy(b, img.data)
	return b
}

// Equal returns true if the two images are byte-for-byte identical.
func (img *Image) Equal(o *Image) bool {
	return bytes.Equal(img.data, o.data)
}
