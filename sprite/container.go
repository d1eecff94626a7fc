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
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/tcprescott/pyz3r/curated"
)

// Format of the sprite file.
type Format int

// List of valid Format values.
const (
	FormatRaw Format = iota
	FormatZSPR
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "SPR"
	case FormatZSPR:
		return "ZSPR"
	}
	return "unknown"
}

const magic = "ZSPR"

// ZSPR header fields.
const (
	gfxPointer     = 9
	palettePointer = 15
	metadataStart  = 0x1d
	headerLen      = metadataStart
)

// sizes of the data copied from the sprite file.
const (
	gfxLen     = 28671
	paletteLen = 120
	glovesLen  = 4
)

// raw SPR layout.
const (
	rawPalette    = 28672
	rawPaletteLen = 119
	rawLen        = rawPalette + rawPaletteLen
)

// the glove colours are scattered through the palette of a raw SPR file.
var rawGloves = []int{28726, 28727, 28756, 28757}

// Container is a parsed sprite file.
type Container struct {
	Format Format

	// metadata from a ZSPR file. empty for a raw SPR file
	Name        string
	Author      string
	AuthorShort string

	GFX     []byte
	Palette []byte
	Gloves  []byte
}

func (c *Container) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("format: %s\n", c.Format))
	if c.Headered() {
		s.WriteString(fmt.Sprintf("name: %s\n", c.Name))
		s.WriteString(fmt.Sprintf("author: %s\n", c.Author))
		s.WriteString(fmt.Sprintf("author (short): %s\n", c.AuthorShort))
	}
	s.WriteString(fmt.Sprintf("gfx: %d bytes\n", len(c.GFX)))
	s.WriteString(fmt.Sprintf("palette: %d bytes\n", len(c.Palette)))
	s.WriteString(fmt.Sprintf("gloves: % 02x\n", c.Gloves))
	return s.String()
}

// Headered returns true if the sprite came from a ZSPR file.
func (c *Container) Headered() bool {
	return c.Format == FormatZSPR
}

// Load reads and parses the named sprite file.
func Load(filename string) (*Container, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NotFound, filename)
		}
		return nil, curated.Errorf(Failed, err)
	}
	return Parse(data)
}

// Parse the data as a sprite file. Data that begins with the ZSPR magic is
// parsed as a ZSPR file. Anything else is parsed as a raw SPR file.
func Parse(data []byte) (*Container, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(NotFound, "empty sprite data")
	}
	if len(data) >= len(magic) && string(data[:len(magic)]) == magic {
		return parseZSPR(data)
	}
	return parseRaw(data)
}

// copy of data[start:start+n] or an error if the range is not completely
// within the data.
func extract(data []byte, start int, n int, what string) ([]byte, error) {
	if start < 0 || start+n > len(data) {
		return nil, curated.Errorf(FormatInvalid,
			fmt.Errorf("%s at %#x (%d bytes) is outside of sprite (%d bytes)", what, start, n, len(data)))
	}
	b := make([]byte, n)
	copy(b, data[start:])
	return b, nil
}

func parseRaw(data []byte) (*Container, error) {
	if len(data) < rawLen {
		return nil, curated.Errorf(FormatInvalid, fmt.Errorf("raw sprite too short (%d bytes)", len(data)))
	}

	c := &Container{
		Format:  FormatRaw,
		GFX:     append([]byte{}, data[:gfxLen]...),
		Palette: append([]byte{}, data[rawPalette:rawLen]...),
		Gloves:  make([]byte, len(rawGloves)),
	}
	for i, o := range rawGloves {
		c.Gloves[i] = data[o]
	}

	return c, nil
}

func parseZSPR(data []byte) (*Container, error) {
	if len(data) < headerLen {
		return nil, curated.Errorf(FormatInvalid, fmt.Errorf("zspr header too short (%d bytes)", len(data)))
	}

	// pointers are 32bit but sprite files are small. the conversion to int
	// is safe on all platforms we care about
	gfx := int(binary.LittleEndian.Uint32(data[gfxPointer:]))
	pal := int(binary.LittleEndian.Uint32(data[palettePointer:]))

	c := &Container{
		Format: FormatZSPR,
	}

	var err error

	c.GFX, err = extract(data, gfx, gfxLen, "gfx")
	if err != nil {
		return nil, err
	}
	c.Palette, err = extract(data, pal, paletteLen, "palette")
	if err != nil {
		return nil, err
	}
	c.Gloves, err = extract(data, pal+paletteLen, glovesLen, "gloves")
	if err != nil {
		return nil, err
	}

	// metadata is never read past the start of the gfx data
	limit := gfx
	if limit > len(data) {
		limit = len(data)
	}

	idx := metadataStart
	c.Name, idx = readUTF16(data, idx, limit)
	c.Author, idx = readUTF16(data, idx, limit)
	c.AuthorShort = readASCII(data, idx, limit)

	return c, nil
}

// readUTF16 reads a NUL terminated little-endian UTF-16 string. returns the
// string and the index immediately after the terminator.
func readUTF16(data []byte, idx int, limit int) (string, int) {
	var u []uint16
	for idx+1 < limit {
		v := binary.LittleEndian.Uint16(data[idx:])
		idx += 2
		if v == 0x0000 {
			break
		}
		u = append(u, v)
	}
	return string(utf16.Decode(u)), idx
}

// readASCII reads a NUL terminated string of single bytes.
func readASCII(data []byte, idx int, limit int) string {
	s := strings.Builder{}
	for idx < limit && data[idx] != 0x00 {
		s.WriteByte(data[idx])
		idx++
	}
	return s.String()
}
