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

package sprite

import (
	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/rom"
)

// destination of the sprite data in the image.
const (
	gfxDest     = 0x80000
	paletteDest = 0xdd308
	glovesDest  = 0xdedf5
)

// legacy images only have space for three glove bytes.
const legacyGlovesLen = 3

// credits screen author space. the marker is present at the start of both
// tile rows when the image has space for the author name.
const (
	authorUpper = 0x118000
	authorLower = 0x11801e
)

var authorMarker = []byte{0x02, 0x37}

func hasAuthorSpace(img *rom.Image) bool {
	for _, o := range []int{authorUpper, authorLower} {
		b, err := img.ReadBytesAt(o, len(authorMarker))
		if err != nil || b[0] != authorMarker[0] || b[1] != authorMarker[1] {
			return false
		}
	}
	return true
}

type block struct {
	offset int
	data   []byte
}

// Inject writes the sprite to the image. The bounds of all writes are
// checked before the first write.
func Inject(img *rom.Image, c *Container) error {
	legacy := img.Revision().Legacy()

	gloves := c.Gloves
	if c.Headered() && legacy && len(gloves) > legacyGlovesLen {
		gloves = gloves[:legacyGlovesLen]
	}

	var blocks []block

	if c.Headered() && hasAuthorSpace(img) {
		top, bottom := encodeAuthor(c.AuthorShort, legacy)
		blocks = append(blocks,
			block{authorUpper + len(authorMarker), top},
			block{authorLower + len(authorMarker), bottom},
		)
	}

	blocks = append(blocks,
		block{gfxDest, c.GFX},
		block{paletteDest, c.Palette},
		block{glovesDest, gloves},
	)

	for _, b := range blocks {
		if !img.InBounds(b.offset, len(b.data)) {
			_, err := img.ReadBytesAt(b.offset, len(b.data))
			return curated.Errorf(Failed, err)
		}
	}
	for _, b := range blocks {
		if err := img.WriteBytesAt(b.offset, b.data); err != nil {
			return curated.Errorf(Failed, err)
		}
	}

	return nil
}
