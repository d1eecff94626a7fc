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

import "strings"

// a glyph is drawn with two tiles, one above the other.
type glyph struct {
	upper byte
	lower byte
}

// unmapped characters are drawn as blank tiles.
var blank = glyph{0x9f, 0x9f}

// glyphs common to all revisions.
func baseGlyphs() map[byte]glyph {
	m := map[byte]glyph{
		' ': blank,
	}
	for i := byte(0); i < 10; i++ {
		m['0'+i] = glyph{0x53 + i, 0x79 + i}
	}
	for i := byte(0); i < 26; i++ {
		m['A'+i] = glyph{0x5d + i, 0x83 + i}
	}
	return m
}

func glyphTable(punctuation map[byte]glyph) map[byte]glyph {
	m := baseGlyphs()
	for k, v := range punctuation {
		m[k] = v
	}
	return m
}

// glyph tables indexed by whether the image is a legacy revision.
var glyphs = map[bool]map[byte]glyph{
	false: glyphTable(map[byte]glyph{
		'\'': {0xd9, 0xec},
		'.':  {0xdc, 0xef},
		'/':  {0xdb, 0xee},
		':':  {0xdd, 0xf0},
		'_':  {0xde, 0xf1},
	}),
	true: glyphTable(map[byte]glyph{
		'\'': {0x77, 0x9d},
		'.':  {0xa0, 0xc0},
		'/':  {0xa2, 0xc2},
		':':  {0xa3, 0xc3},
		'_':  {0xa6, 0xc6},
	}),
}

// the number of glyphs on the credits line for the author.
const authorWidth = 28

// centre the string in a field of authorWidth characters. where the padding
// cannot be split equally the extra space is on the right.
func centre(s string) string {
	if len(s) > authorWidth {
		s = s[:authorWidth]
	}
	pad := authorWidth - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// upper case ASCII letters only. other bytes are unchanged.
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// encodeAuthor returns the upper and lower tile rows for the author name.
func encodeAuthor(author string, legacy bool) ([]byte, []byte) {
	table := glyphs[legacy]
	s := upper(centre(author))

	top := make([]byte, len(s))
	bottom := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		g, ok := table[s[i]]
		if !ok {
			g = blank
		}
		top[i] = g.upper
		bottom[i] = g.lower
	}

	return top, bottom
}
