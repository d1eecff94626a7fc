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

package rom_test

import (
	"math"
	"testing"

	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/rom"
	"github.com/tcprescott/pyz3r/test"
)

func TestImageRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0xff}
	img := rom.Load(data)
	test.ExpectEquality(t, img.Len(), len(data))
	test.ExpectEquality(t, string(img.Bytes()), string(data))

	// the image owns a copy of the data
	data[0] = 0x10
	v, err := img.ReadByteAt(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(0x00))

	// as does the caller of Bytes()
	b := img.Bytes()
	b[1] = 0x10
	v, err = img.ReadByteAt(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(0x01))

	test.ExpectSuccess(t, rom.Load(img.Bytes()).Equal(img))
}

func TestImageWrites(t *testing.T) {
	img := rom.NewImage(1000)

	test.ExpectSuccess(t, img.WriteBytesAt(100, []byte{1, 2, 3}))
	b, err := img.ReadBytesAt(99, 5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), string([]byte{0, 1, 2, 3, 0}))

	test.ExpectSuccess(t, img.WriteByteAt(999, 0xaa))
	v, err := img.ReadByteAt(999)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(0xaa))

	// zero length writes are always fine as long as the offset is in the image
	test.ExpectSuccess(t, img.WriteBytesAt(1000, []byte{}))
}

func TestImageOutOfBounds(t *testing.T) {
	img := rom.NewImage(1000)

	err := img.WriteByteAt(1000, 0x01)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))

	err = img.WriteByteAt(-1, 0x01)
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))

	// a write straddling the end of the image changes nothing
	err = img.WriteBytesAt(998, []byte{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))
	test.ExpectSuccess(t, img.Equal(rom.NewImage(1000)))

	_, err = img.ReadBytesAt(990, 11)
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))

	// writes never grow the image
	test.ExpectEquality(t, img.Len(), 1000)

	test.ExpectEquality(t, curated.IsAny(err), true)
	test.ExpectEquality(t, err.Error(), "rom: out of bounds: offset 0x3de (length 11, image size 1000)")
}

func TestImageOutOfBoundsOverflow(t *testing.T) {
	img := rom.NewImage(1000)

	// offset+length would wrap around to a negative value
	err := img.WriteBytesAt(math.MaxInt, []byte{1})
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))
	err = img.WriteBytesAt(math.MaxInt-1, []byte{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))
	err = img.WriteByteAt(math.MaxInt, 0x01)
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))

	_, err = img.ReadByteAt(math.MaxInt)
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))
	_, err = img.ReadBytesAt(1, math.MaxInt)
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))
	_, err = img.ReadBytesAt(math.MaxInt, math.MaxInt)
	test.ExpectSuccess(t, curated.Is(err, rom.OutOfBounds))

	test.ExpectEquality(t, img.InBounds(math.MaxInt, 1), false)
	test.ExpectEquality(t, img.InBounds(0, 1000), true)
	test.ExpectEquality(t, img.InBounds(1000, 0), true)
	test.ExpectSuccess(t, img.Equal(rom.NewImage(1000)))
}

func TestRevision(t *testing.T) {
	img := rom.NewImage(2 * rom.MB)
	test.ExpectEquality(t, img.Revision(), rom.Revision(0))

	test.DemandSuccess(t, img.WriteBytesAt(0x7fe2, []byte{0xff, 0xff}))
	test.ExpectEquality(t, img.Revision(), rom.Revision(0))
	test.ExpectSuccess(t, img.Revision().Legacy())

	test.DemandSuccess(t, img.WriteBytesAt(0x7fe2, []byte{0x04, 0x00}))
	test.ExpectEquality(t, img.Revision(), rom.RevisionExtended)
	test.ExpectFailure(t, img.Revision().Legacy())
	test.ExpectEquality(t, img.Revision().String(), "v4")

	test.DemandSuccess(t, img.WriteBytesAt(0x7fe2, []byte{0x01, 0x02}))
	test.ExpectEquality(t, img.Revision(), rom.Revision(0x0201))

	// image too small to hold a revision
	test.ExpectEquality(t, rom.NewImage(0x100).Revision(), rom.Revision(0))
}

func TestExpand(t *testing.T) {
	img := rom.NewImage(2 * rom.MB)
	test.DemandSuccess(t, img.WriteByteAt(2*rom.MB-1, 0x55))

	test.DemandSuccess(t, img.Expand(4))
	test.ExpectEquality(t, img.Len(), 4*rom.MB)

	// original content is preserved and the new space is zero
	v, err := img.ReadByteAt(2*rom.MB - 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(0x55))

	b, err := img.ReadBytesAt(2*rom.MB, 2*rom.MB)
	test.ExpectSuccess(t, err)
	zero := true
	for _, v := range b {
		if v != 0x00 {
			zero = false
			break
		}
	}
	test.ExpectSuccess(t, zero)

	// expanding to the current size changes nothing
	before := rom.Load(img.Bytes())
	test.ExpectSuccess(t, img.Expand(4))
	test.ExpectSuccess(t, img.Equal(before))

	// expansion cannot shrink the image
	err = img.Expand(2)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, rom.ShrinkNotAllowed))
	test.ExpectEquality(t, img.Len(), 4*rom.MB)
}

func TestChecksum(t *testing.T) {
	img := rom.NewImage(0x10000)
	test.DemandSuccess(t, img.WriteByteAt(0, 0x01))
	test.DemandSuccess(t, img.WriteByteAt(40000, 0x02))

	// bytes in the excluded region make no difference to the sum
	test.DemandSuccess(t, img.WriteBytesAt(32731, []byte{0xff, 0xff, 0xff, 0xff, 0xff}))

	checksum, inverse := rom.Checksum(img)
	test.ExpectEquality(t, checksum, uint16(3+510))
	test.ExpectEquality(t, inverse, uint16(3+510)^0xffff)

	test.DemandSuccess(t, img.Finalise())
	b, err := img.ReadBytesAt(32732, 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), string([]byte{0xfe, 0xfd, 0x01, 0x02}))
	test.ExpectSuccess(t, img.ChecksumValid())

	// finalising again produces the same image
	before := rom.Load(img.Bytes())
	test.DemandSuccess(t, img.Finalise())
	test.ExpectSuccess(t, img.Equal(before))

	// the byte immediately after the checksum pair is part of the sum
	test.DemandSuccess(t, img.WriteByteAt(32736, 0x01))
	checksum, _ = rom.Checksum(img)
	test.ExpectEquality(t, checksum, uint16(4+510))
	test.ExpectFailure(t, img.ChecksumValid())
}

func TestChecksumWraps(t *testing.T) {
	img := rom.NewImage(0x10000)
	for i := 0; i < 300; i++ {
		test.DemandSuccess(t, img.WriteByteAt(0x8000+i, 0xff))
	}
	checksum, inverse := rom.Checksum(img)
	test.ExpectEquality(t, checksum, uint16((300*0xff+510)&0xffff))
	test.ExpectEquality(t, checksum^inverse, uint16(0xffff))
}

func TestChecksumSmallImage(t *testing.T) {
	img := rom.NewImage(100)
	test.DemandSuccess(t, img.WriteByteAt(10, 0x10))
	checksum, _ := rom.Checksum(img)
	test.ExpectEquality(t, checksum, uint16(0x10+510))

	err := img.Finalise()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, rom.OutOfBounds))
}
