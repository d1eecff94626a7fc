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

package features_test

import (
	"testing"

	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/features"
	"github.com/tcprescott/pyz3r/rom"
	"github.com/tcprescott/pyz3r/test"
)

func newImage(t *testing.T, revision rom.Revision) *rom.Image {
	t.Helper()
	img := rom.NewImage(2 * rom.MB)
	test.DemandSuccess(t, img.WriteBytesAt(0x7fe2, []byte{byte(revision), byte(revision >> 8)}))
	return img
}

func readByte(t *testing.T, img *rom.Image, offset int) byte {
	t.Helper()
	v, err := img.ReadByteAt(offset)
	test.DemandSuccess(t, err)
	return v
}

func TestHeartSpeed(t *testing.T) {
	img := newImage(t, 0)
	test.DemandSuccess(t, features.HeartSpeed(img, features.HeartSpeedHalf))
	test.ExpectEquality(t, readByte(t, img, 1572915), byte(64))

	test.DemandSuccess(t, features.HeartSpeed(img, features.HeartSpeedOff))
	test.ExpectEquality(t, readByte(t, img, 1572915), byte(0))

	test.DemandSuccess(t, features.HeartSpeed(img, features.HeartSpeedQuarter))
	test.ExpectEquality(t, readByte(t, img, 1572915), byte(128))

	// empty value is normal
	test.DemandSuccess(t, features.HeartSpeed(img, ""))
	test.ExpectEquality(t, readByte(t, img, 1572915), byte(32))
}

func TestInvalidOption(t *testing.T) {
	img := newImage(t, 0)
	before := rom.Load(img.Bytes())

	err := features.HeartSpeed(img, "fastest")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, features.InvalidOption))

	err = features.HeartColor(img, "purple")
	test.ExpectSuccess(t, curated.Is(err, features.InvalidOption))

	err = features.MenuSpeed(img, "glacial")
	test.ExpectSuccess(t, curated.Is(err, features.InvalidOption))

	test.ExpectSuccess(t, img.Equal(before))

	_, err = features.ParseHeartSpeed("fastest")
	test.ExpectSuccess(t, curated.Is(err, features.InvalidOption))
	test.ExpectEquality(t, err.Error(), `features: invalid option: heart speed "fastest"`)
}

func TestParse(t *testing.T) {
	hs, err := features.ParseHeartSpeed(" Quarter ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hs, features.HeartSpeedQuarter)

	hs, err = features.ParseHeartSpeed("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hs, features.HeartSpeedNormal)

	hc, err := features.ParseHeartColor("YELLOW")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hc, features.HeartColorYellow)

	hc, err = features.ParseHeartColor("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hc, features.HeartColorRed)

	ms, err := features.ParseMenuSpeed("instant")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ms, features.MenuSpeedInstant)

	ms, err = features.ParseMenuSpeed("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ms, features.MenuSpeedNormal)
}

func TestHeartColorLegacy(t *testing.T) {
	img := newImage(t, 0)
	test.DemandSuccess(t, features.HeartColor(img, features.HeartColorYellow))

	for offset := 457246; offset <= 457264; offset += 2 {
		test.ExpectEquality(t, readByte(t, img, offset), byte(40), offset)
	}

	// bytes between the HUD values are untouched
	test.ExpectEquality(t, readByte(t, img, 457247), byte(0))
	test.ExpectEquality(t, readByte(t, img, 415073), byte(9))

	// the selector byte is not used by legacy images
	test.ExpectEquality(t, readByte(t, img, 0x187020), byte(0))

	// revision 0xffff is a legacy image too
	img = rom.NewImage(2 * rom.MB)
	test.DemandSuccess(t, img.WriteBytesAt(0x7fe2, []byte{0xff, 0xff}))
	test.DemandSuccess(t, features.HeartColor(img, features.HeartColorBlue))
	test.ExpectEquality(t, readByte(t, img, 0x6fa30), byte(44))
	test.ExpectEquality(t, readByte(t, img, 0x65561), byte(13))
}

func TestHeartColorExtended(t *testing.T) {
	img := newImage(t, rom.RevisionExtended)
	test.DemandSuccess(t, features.HeartColor(img, features.HeartColorGreen))
	test.ExpectEquality(t, readByte(t, img, 0x187020), byte(2))

	// the legacy locations are untouched
	test.ExpectEquality(t, readByte(t, img, 0x6fa1e), byte(0))
	test.ExpectEquality(t, readByte(t, img, 0x65561), byte(0))

	test.DemandSuccess(t, features.HeartColor(img, ""))
	test.ExpectEquality(t, readByte(t, img, 0x187020), byte(0))
}

func TestMenuSpeed(t *testing.T) {
	img := newImage(t, 0)

	test.DemandSuccess(t, features.MenuSpeed(img, features.MenuSpeedInstant))
	test.ExpectEquality(t, readByte(t, img, 0x180048), byte(0xe8))
	test.ExpectEquality(t, readByte(t, img, 0x6dd9a), byte(0x20))
	test.ExpectEquality(t, readByte(t, img, 0x6df2a), byte(0x20))
	test.ExpectEquality(t, readByte(t, img, 0x6e0e9), byte(0x20))

	test.DemandSuccess(t, features.MenuSpeed(img, features.MenuSpeedFast))
	test.ExpectEquality(t, readByte(t, img, 0x180048), byte(0x10))
	test.ExpectEquality(t, readByte(t, img, 0x6dd9a), byte(0x11))
	test.ExpectEquality(t, readByte(t, img, 0x6df2a), byte(0x12))
	test.ExpectEquality(t, readByte(t, img, 0x6e0e9), byte(0x12))

	test.DemandSuccess(t, features.MenuSpeed(img, features.MenuSpeedSlow))
	test.ExpectEquality(t, readByte(t, img, 0x180048), byte(0x04))
}

func TestFlags(t *testing.T) {
	img := newImage(t, 0)

	test.DemandSuccess(t, features.Music(img, false))
	test.ExpectEquality(t, readByte(t, img, 0x18021a), byte(0x01))
	test.DemandSuccess(t, features.Music(img, true))
	test.ExpectEquality(t, readByte(t, img, 0x18021a), byte(0x00))

	test.DemandSuccess(t, features.Quickswap(img, true))
	test.ExpectEquality(t, readByte(t, img, 0x18004b), byte(0x01))
	test.DemandSuccess(t, features.Quickswap(img, false))
	test.ExpectEquality(t, readByte(t, img, 0x18004b), byte(0x00))

	test.DemandSuccess(t, features.ReduceFlashing(img, true))
	test.ExpectEquality(t, readByte(t, img, 0x18017f), byte(0x01))

	test.DemandSuccess(t, img.WriteBytesAt(0x18021d, []byte{0xff, 0xff}))
	test.DemandSuccess(t, features.MSU1Resume(img, true))
	test.ExpectEquality(t, readByte(t, img, 0x18021d), byte(0xff))
	test.ExpectEquality(t, readByte(t, img, 0x18021e), byte(0xff))
	test.DemandSuccess(t, features.MSU1Resume(img, false))
	test.ExpectEquality(t, readByte(t, img, 0x18021d), byte(0x00))
	test.ExpectEquality(t, readByte(t, img, 0x18021e), byte(0x00))
}

func TestOutOfBounds(t *testing.T) {
	// image large enough for some of the menu speed writes but not all
	img := rom.NewImage(0x6e000)

	err := features.MenuSpeed(img, features.MenuSpeedInstant)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, features.Failed))
	test.ExpectSuccess(t, curated.Has(err, rom.OutOfBounds))
	test.ExpectSuccess(t, img.Equal(rom.NewImage(0x6e000)))

	err = features.HeartSpeed(img, features.HeartSpeedHalf)
	test.ExpectSuccess(t, curated.Has(err, rom.OutOfBounds))
}

func TestOptions(t *testing.T) {
	img := newImage(t, 0)
	test.DemandSuccess(t, img.WriteBytesAt(0x18021d, []byte{0xff, 0xff}))

	test.DemandSuccess(t, features.DefaultOptions().Apply(img))
	test.ExpectEquality(t, readByte(t, img, 0x180033), byte(64))
	test.ExpectEquality(t, readByte(t, img, 0x6fa1e), byte(36))
	test.ExpectEquality(t, readByte(t, img, 0x65561), byte(5))
	test.ExpectEquality(t, readByte(t, img, 0x180048), byte(0x08))
	test.ExpectEquality(t, readByte(t, img, 0x18004b), byte(0x00))
	test.ExpectEquality(t, readByte(t, img, 0x18021a), byte(0x00))
	test.ExpectEquality(t, readByte(t, img, 0x18017f), byte(0x00))
	test.ExpectEquality(t, readByte(t, img, 0x18021d), byte(0xff))

	// an invalid option in the set changes nothing
	before := rom.Load(img.Bytes())
	o := features.DefaultOptions()
	o.HeartSpeed = features.HeartSpeedQuarter
	o.MenuSpeed = "glacial"
	err := o.Apply(img)
	test.ExpectSuccess(t, curated.Is(err, features.InvalidOption))
	test.ExpectSuccess(t, img.Equal(before))

	// case is normalised by Apply()
	o = features.DefaultOptions()
	o.HeartSpeed = "QUARTER"
	test.DemandSuccess(t, o.Apply(img))
	test.ExpectEquality(t, readByte(t, img, 0x180033), byte(128))
}
