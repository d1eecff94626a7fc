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

package session

import (
	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/digest"
	"github.com/tcprescott/pyz3r/features"
	"github.com/tcprescott/pyz3r/logger"
	"github.com/tcprescott/pyz3r/patch"
	"github.com/tcprescott/pyz3r/patch/bps"
	"github.com/tcprescott/pyz3r/rom"
	"github.com/tcprescott/pyz3r/seed"
	"github.com/tcprescott/pyz3r/sprite"
)

// Sentinal error patterns.
const (
	Failed = "session: %s: %v"
)

// names of the pipeline stages. also used as the logging tag.
const (
	StageLoad     = "load"
	StageBPS      = "bps"
	StageExpand   = "expand"
	StagePatch    = "patch"
	StageFeatures = "features"
	StageSprite   = "sprite"
	StageChecksum = "checksum"
)

// Session is a single run of the patching pipeline.
type Session struct {
	// the base image is not changed by Run()
	base *rom.Image

	// the seed's patches and the size of the final image. can be nil, in
	// which case only the base patch, features and sprite are applied
	Metadata *seed.Metadata

	// base patch. nil if there is no base patch
	BPS []byte

	Options features.Options

	// sprite file data. nil for no sprite change
	Sprite []byte

	// continue patching when the sprite stage fails
	SkipSpriteErrors bool

	// chained fingerprint of the image after each stage
	Digest digest.Stages

	// log entries for each stage are made with this permission
	Permission logger.Permission
}

// NewSession is the preferred method of initialisation for the Session
// type. The feature options are set to their default values.
func NewSession(base *rom.Image, md *seed.Metadata) *Session {
	return &Session{
		base:       base,
		Metadata:   md,
		Options:    features.DefaultOptions(),
		Permission: logger.Allow,
	}
}

func (s *Session) record(stage string, img *rom.Image) {
	logger.Logf(s.Permission, stage, "digest %s", s.Digest.Record(stage, img))
}

// Run the pipeline and return the patched image. The session can be run
// more than once and produces identical images each time.
func (s *Session) Run() (*rom.Image, error) {
	if s.base == nil {
		return nil, curated.Errorf(Failed, StageLoad, "no base image")
	}

	s.Digest.ResetDigest()

	img := rom.Load(s.base.Bytes())
	logger.Logf(s.Permission, StageLoad, "%d bytes (revision %s)", img.Len(), img.Revision())
	s.record(StageLoad, img)

	if s.BPS != nil {
		var err error
		img, err = bps.ApplyImage(img, s.BPS)
		if err != nil {
			return nil, curated.Errorf(Failed, StageBPS, err)
		}
		logger.Logf(s.Permission, StageBPS, "%d bytes (revision %s)", img.Len(), img.Revision())
		s.record(StageBPS, img)
	}

	if s.Metadata != nil {
		if s.Metadata.SizeMB > 0 {
			err := img.Expand(s.Metadata.SizeMB)
			if err != nil {
				return nil, curated.Errorf(Failed, StageExpand, err)
			}
			logger.Logf(s.Permission, StageExpand, "%dMB", s.Metadata.SizeMB)
			s.record(StageExpand, img)
		}

		err := patch.Apply(img, s.Metadata.Patch)
		if err != nil {
			return nil, curated.Errorf(Failed, StagePatch, err)
		}
		logger.Logf(s.Permission, StagePatch, "%d operations applied", len(s.Metadata.Patch))
		s.record(StagePatch, img)
	}

	err := s.Options.Apply(img)
	if err != nil {
		return nil, curated.Errorf(Failed, StageFeatures, err)
	}
	logger.Log(s.Permission, StageFeatures, s.Options)
	s.record(StageFeatures, img)

	if s.Sprite != nil {
		err := s.injectSprite(img)
		if err != nil {
			if !s.SkipSpriteErrors {
				return nil, curated.Errorf(Failed, StageSprite, err)
			}
			logger.Logf(s.Permission, StageSprite, "skipped: %v", err)
		} else {
			s.record(StageSprite, img)
		}
	}

	err = img.Finalise()
	if err != nil {
		return nil, curated.Errorf(Failed, StageChecksum, err)
	}
	checksum, _ := rom.Checksum(img)
	logger.Logf(s.Permission, StageChecksum, "%04x", checksum)
	s.record(StageChecksum, img)

	return img, nil
}

// the sprite is parsed and injected as a single stage so that a bad sprite
// file can be skipped in the same way as a failed injection.
func (s *Session) injectSprite(img *rom.Image) error {
	c, err := sprite.Parse(s.Sprite)
	if err != nil {
		return err
	}
	if err := sprite.Inject(img, c); err != nil {
		return err
	}
	if c.Headered() {
		logger.Logf(s.Permission, StageSprite, "%s by %s (%s)", c.Name, c.AuthorShort, c.Format)
	} else {
		logger.Logf(s.Permission, StageSprite, "%s", c.Format)
	}
	return nil
}
