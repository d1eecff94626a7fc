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

package bps

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// appendNumber appends the variable length encoding of n.
func appendNumber(b []byte, n int) []byte {
	v := uint64(n)
	for {
		x := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(b, 0x80|x)
		}
		b = append(b, x)
		v--
	}
}

func appendAction(b []byte, kind int, length int) []byte {
	return appendNumber(b, (length-1)<<2|kind)
}

// Encode creates a patch that transforms source into target. The encoding is
// linear: runs of bytes that are the same in source and target at the same
// offset become source reads and everything else is carried in the patch.
// This is adequate for patches between images of the same layout but the
// patch will not be as small as one created by a dedicated tool.
func Encode(source []byte, target []byte, metadata string) []byte {
	var b bytes.Buffer

	p := []byte(magic)
	p = appendNumber(p, len(source))
	p = appendNumber(p, len(target))
	p = appendNumber(p, len(metadata))
	p = append(p, metadata...)
	b.Write(p)

	same := func(i int) bool {
		return i < len(source) && source[i] == target[i]
	}

	i := 0
	for i < len(target) {
		j := i
		if same(i) {
			for j < len(target) && same(j) {
				j++
			}
			b.Write(appendAction(nil, sourceRead, j-i))
		} else {
			for j < len(target) && !same(j) {
				j++
			}
			b.Write(appendAction(nil, targetRead, j-i))
			b.Write(target[i:j])
		}
		i = j
	}

	var footer [footerLen]byte
	binary.LittleEndian.PutUint32(footer[0:], crc32.ChecksumIEEE(source))
	binary.LittleEndian.PutUint32(footer[4:], crc32.ChecksumIEEE(target))
	b.Write(footer[:8])

	binary.LittleEndian.PutUint32(footer[8:], crc32.ChecksumIEEE(b.Bytes()))
	b.Write(footer[8:])

	return b.Bytes()
}
