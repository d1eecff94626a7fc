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
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/rom"
)

const magic = "BPS1"

// the footer is three little-endian CRC-32 values.
const footerLen = 12

// action kinds. the kind is in the lower two bits of an action word and the
// length minus one is in the remaining bits.
const (
	sourceRead = iota
	targetRead
	sourceCopy
	targetCopy
)

// header of a BPS patch. pos is the offset of the first action.
type header struct {
	sourceSize int
	targetSize int
	metadata   string
	pos        int
}

type decoder struct {
	data []byte
	pos  int

	// the end of the action stream
	end int
}

// number decodes a variable length number at the current position.
func (d *decoder) number() (int, error) {
	var data uint64
	var shift uint64 = 1

	for {
		if d.pos >= d.end {
			return 0, fmt.Errorf("truncated number at %#x", d.pos)
		}
		x := d.data[d.pos]
		d.pos++

		data += uint64(x&0x7f) * shift
		if x&0x80 != 0 {
			break
		}
		shift <<= 7
		data += shift

		// no size in a patch for a cartridge comes close to this
		if shift > 1<<56 {
			return 0, fmt.Errorf("number too large at %#x", d.pos)
		}
	}

	if data > 1<<31 {
		return 0, fmt.Errorf("number too large at %#x", d.pos)
	}

	return int(data), nil
}

// signed decodes a relative offset. the lowest bit is the sign.
func (d *decoder) signed() (int, error) {
	n, err := d.number()
	if err != nil {
		return 0, err
	}
	v := n >> 1
	if n&0x01 == 0x01 {
		v = -v
	}
	return v, nil
}

func readHeader(diff []byte) (header, error) {
	if len(diff) < len(magic)+footerLen {
		return header{}, curated.Errorf(Malformed, fmt.Errorf("patch too short (%d bytes)", len(diff)))
	}
	if string(diff[:len(magic)]) != magic {
		return header{}, curated.Errorf(Malformed, errors.New("not a BPS patch"))
	}

	d := decoder{
		data: diff,
		pos:  len(magic),
		end:  len(diff) - footerLen,
	}

	var h header
	var err error

	h.sourceSize, err = d.number()
	if err != nil {
		return header{}, curated.Errorf(Malformed, err)
	}
	h.targetSize, err = d.number()
	if err != nil {
		return header{}, curated.Errorf(Malformed, err)
	}
	n, err := d.number()
	if err != nil {
		return header{}, curated.Errorf(Malformed, err)
	}
	if d.pos+n > d.end {
		return header{}, curated.Errorf(Malformed, errors.New("metadata extends beyond end of patch"))
	}
	h.metadata = string(diff[d.pos : d.pos+n])
	h.pos = d.pos + n

	return h, nil
}

// Metadata returns the metadata string in the patch. The metadata is usually
// empty.
func Metadata(diff []byte) (string, error) {
	h, err := readHeader(diff)
	if err != nil {
		return "", err
	}
	return h.metadata, nil
}

// Apply the diff to the source data. The returned data is the target, a new
// slice that does not share memory with the source.
func Apply(source []byte, diff []byte) ([]byte, error) {
	if len(diff) < len(magic)+footerLen {
		return nil, curated.Errorf(Malformed, fmt.Errorf("patch too short (%d bytes)", len(diff)))
	}

	footer := diff[len(diff)-footerLen:]
	sourceCRC := binary.LittleEndian.Uint32(footer[0:])
	targetCRC := binary.LittleEndian.Uint32(footer[4:])
	patchCRC := binary.LittleEndian.Uint32(footer[8:])

	// the patch crc is checked before anything in the patch is decoded
	if crc := crc32.ChecksumIEEE(diff[:len(diff)-4]); crc != patchCRC {
		return nil, curated.Errorf(PatchCorrupt, fmt.Errorf("patch crc is %08x, expected %08x", crc, patchCRC))
	}

	h, err := readHeader(diff)
	if err != nil {
		return nil, err
	}
	if len(source) != h.sourceSize {
		return nil, curated.Errorf(PatchCorrupt, fmt.Errorf("source is %d bytes, expected %d", len(source), h.sourceSize))
	}
	if crc := crc32.ChecksumIEEE(source); crc != sourceCRC {
		return nil, curated.Errorf(PatchCorrupt, fmt.Errorf("source crc is %08x, expected %08x", crc, sourceCRC))
	}

	target := make([]byte, h.targetSize)

	d := decoder{
		data: diff,
		pos:  h.pos,
		end:  len(diff) - footerLen,
	}

	var output int
	var sourceRelative int
	var targetRelative int

	for d.pos < d.end {
		action, err := d.number()
		if err != nil {
			return nil, curated.Errorf(Malformed, err)
		}

		length := (action >> 2) + 1
		if output+length > len(target) {
			return nil, curated.Errorf(Malformed, fmt.Errorf("action at output %#x writes beyond end of target", output))
		}

		switch action & 0x03 {
		case sourceRead:
			if output+length > len(source) {
				return nil, curated.Errorf(Malformed, fmt.Errorf("source read at %#x beyond end of source", output))
			}
			copy(target[output:output+length], source[output:])

		case targetRead:
			if d.pos+length > d.end {
				return nil, curated.Errorf(Malformed, fmt.Errorf("target read at %#x beyond end of patch", d.pos))
			}
			copy(target[output:output+length], d.data[d.pos:])
			d.pos += length

		case sourceCopy:
			v, err := d.signed()
			if err != nil {
				return nil, curated.Errorf(Malformed, err)
			}
			sourceRelative += v
			if sourceRelative < 0 || sourceRelative+length > len(source) {
				return nil, curated.Errorf(Malformed, fmt.Errorf("source copy from %#x outside of source", sourceRelative))
			}
			copy(target[output:output+length], source[sourceRelative:])
			sourceRelative += length

		case targetCopy:
			v, err := d.signed()
			if err != nil {
				return nil, curated.Errorf(Malformed, err)
			}
			targetRelative += v
			if targetRelative < 0 || targetRelative >= output {
				return nil, curated.Errorf(Malformed, fmt.Errorf("target copy from %#x outside of written target", targetRelative))
			}

			// the source and destination regions may overlap so the copy
			// must be byte by byte
			for i := 0; i < length; i++ {
				target[output+i] = target[targetRelative]
				targetRelative++
			}
		}

		output += length
	}

	if output != len(target) {
		return nil, curated.Errorf(Malformed, fmt.Errorf("target is %d bytes, expected %d", output, len(target)))
	}

	if crc := crc32.ChecksumIEEE(target); crc != targetCRC {
		return nil, curated.Errorf(PatchCorrupt, fmt.Errorf("target crc is %08x, expected %08x", crc, targetCRC))
	}

	return target, nil
}

// ApplyImage applies the diff to the image and returns the target as a new
// image. The source image is not changed.
func ApplyImage(img *rom.Image, diff []byte) (*rom.Image, error) {
	target, err := Apply(img.Bytes(), diff)
	if err != nil {
		return nil, err
	}
	return rom.Load(target), nil
}
