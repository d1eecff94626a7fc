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

package session_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/features"
	"github.com/tcprescott/pyz3r/logger"
	"github.com/tcprescott/pyz3r/patch"
	"github.com/tcprescott/pyz3r/patch/bps"
	"github.com/tcprescott/pyz3r/rom"
	"github.com/tcprescott/pyz3r/seed"
	"github.com/tcprescott/pyz3r/session"
	"github.com/tcprescott/pyz3r/sprite"
	"github.com/tcprescott/pyz3r/test"
)

// a base image and a base patch that sets the revision to 4.
func base(t *testing.T) (*rom.Image, []byte) {
	t.Helper()
	img := rom.NewImage(2 * rom.MB)
	target := img.Bytes()
	target[0x7fe2] = 0x04
	target[0x7fe3] = 0x00
	return img, bps.Encode(img.Bytes(), target, "")
}

func rawSprite() []byte {
	return bytes.Repeat([]byte{0x5a}, 28791)
}

func readByte(t *testing.T, img *rom.Image, offset int) byte {
	t.Helper()
	v, err := img.ReadByteAt(offset)
	test.DemandSuccess(t, err)
	return v
}

func TestRun(t *testing.T) {
	img, diff := base(t)
	md := &seed.Metadata{
		SizeMB: 4,
		Patch: patch.Operations{
			{Offset: 3 * rom.MB, Values: []byte{1, 2, 3}},
		},
		Hash: "abcde",
	}

	s := session.NewSession(img, md)
	s.BPS = diff
	s.Sprite = rawSprite()
	s.Options.HeartColor = features.HeartColorYellow

	out, err := s.Run()
	test.DemandSuccess(t, err)

	// patch beyond the original size was possible because of the expansion
	test.ExpectEquality(t, out.Len(), 4*rom.MB)
	test.ExpectEquality(t, readByte(t, out, 3*rom.MB+2), byte(3))

	// base patch set the revision so the extended heart colour was used
	test.ExpectEquality(t, out.Revision(), rom.RevisionExtended)
	test.ExpectEquality(t, readByte(t, out, 0x187020), byte(3))
	test.ExpectEquality(t, readByte(t, out, 0x180033), byte(64))

	test.ExpectEquality(t, readByte(t, out, 0x80000), byte(0x5a))

	// checksum was written last
	test.ExpectSuccess(t, out.ChecksumValid())

	// base image is unchanged
	test.ExpectSuccess(t, img.Equal(rom.NewImage(2*rom.MB)))

	stages := make([]string, 0)
	for _, e := range s.Digest.Entries() {
		stages = append(stages, e.Stage)
	}
	test.ExpectEquality(t, strings.Join(stages, ","), "load,bps,expand,patch,features,sprite,checksum")
}

func TestDeterminism(t *testing.T) {
	img, diff := base(t)
	md := &seed.Metadata{SizeMB: 4}

	s := session.NewSession(img, md)
	s.BPS = diff
	a, err := s.Run()
	test.DemandSuccess(t, err)
	h := s.Digest.Hash()

	b, err := s.Run()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, a.Equal(b))
	test.ExpectEquality(t, s.Digest.Hash(), h)

	// a different option changes the digest
	s.Options.Quickswap = true
	_, err = s.Run()
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, s.Digest.Hash(), h)
}

func TestNoMetadata(t *testing.T) {
	img, _ := base(t)
	s := session.NewSession(img, nil)
	out, err := s.Run()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.Len(), 2*rom.MB)
	test.ExpectSuccess(t, out.ChecksumValid())
}

func TestFailures(t *testing.T) {
	img, diff := base(t)

	// corrupt base patch
	d := append([]byte{}, diff...)
	d[len(d)-1] ^= 0xff
	s := session.NewSession(img, nil)
	s.BPS = d
	_, err := s.Run()
	test.ExpectSuccess(t, curated.Is(err, session.Failed))
	test.ExpectSuccess(t, curated.Has(err, bps.PatchCorrupt))

	// image cannot shrink
	s = session.NewSession(img, &seed.Metadata{SizeMB: 1})
	_, err = s.Run()
	test.ExpectSuccess(t, curated.Has(err, rom.ShrinkNotAllowed))

	// patch beyond the end of an image that has not been expanded
	s = session.NewSession(img, &seed.Metadata{
		Patch: patch.Operations{{Offset: 3 * rom.MB, Values: []byte{1}}},
	})
	_, err = s.Run()
	test.ExpectSuccess(t, curated.Has(err, rom.OutOfBounds))
	test.ExpectSuccess(t, curated.Has(err, patch.Failed))

	// invalid option
	s = session.NewSession(img, nil)
	s.Options.MenuSpeed = "glacial"
	_, err = s.Run()
	test.ExpectSuccess(t, curated.Has(err, features.InvalidOption))

	// no base image
	s = session.NewSession(nil, nil)
	_, err = s.Run()
	test.ExpectFailure(t, err)
}

func TestSpriteErrors(t *testing.T) {
	img, _ := base(t)

	s := session.NewSession(img, nil)
	s.Sprite = []byte("ZSPR")
	_, err := s.Run()
	test.ExpectSuccess(t, curated.Has(err, sprite.FormatInvalid))

	s.Sprite = []byte{}
	_, err = s.Run()
	test.ExpectSuccess(t, curated.Has(err, sprite.NotFound))

	// the failed stage is skipped and the rest of the pipeline continues
	s.Sprite = []byte("ZSPR")
	s.SkipSpriteErrors = true
	out, err := s.Run()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.ChecksumValid())
	test.ExpectEquality(t, readByte(t, out, 0x80000), byte(0x00))

	for _, e := range s.Digest.Entries() {
		test.ExpectInequality(t, e.Stage, session.StageSprite)
	}
}

func TestLogging(t *testing.T) {
	img, diff := base(t)
	w := &strings.Builder{}

	logger.Clear()
	s := session.NewSession(img, &seed.Metadata{SizeMB: 4})
	s.BPS = diff
	s.Sprite = rawSprite()
	_, err := s.Run()
	test.DemandSuccess(t, err)
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "expand: 4MB"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "patch: 0 operations applied"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "sprite: "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "checksum: "))

	logger.Clear()
	w.Reset()
	s.Permission = logger.Deny
	_, err = s.Run()
	test.DemandSuccess(t, err)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}
