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
	"fmt"
	"strings"
)

// CopierHeaderLen is the size of the header added to a dump by some copier
// devices.
const CopierHeaderLen = 512

// StripCopierHeader removes the copier header from the data if there is one.
// A dump with a copier header is 512 bytes longer than a multiple of 1024.
// The returned slice shares memory with the data argument.
func StripCopierHeader(data []byte) ([]byte, bool) {
	if len(data)%1024 == CopierHeaderLen {
		return data[CopierHeaderLen:], true
	}
	return data, false
}

// LoROM internal header.
const (
	headerOffset = 0x7fc0
	headerLen    = 0x20
	titleLen     = 21
)

// Header is the internal cartridge header found at 0x7fc0 in a LoROM image.
type Header struct {
	Title       string
	MapMode     uint8
	CartType    uint8
	ROMSize     uint8
	RAMSize     uint8
	Destination uint8
	Licensee    uint8
	Version     uint8
	Complement  uint16
	Checksum    uint16
}

// ROMSizeKB returns the ROM size declared in the header in kilobytes.
func (h Header) ROMSizeKB() int {
	return 1 << h.ROMSize
}

// RAMSizeKB returns the SRAM size declared in the header in kilobytes.
func (h Header) RAMSizeKB() int {
	if h.RAMSize == 0 {
		return 0
	}
	return 1 << h.RAMSize
}

// Region returns a short description of the destination code.
func (h Header) Region() string {
	switch h.Destination {
	case 0x00:
		return "Japan"
	case 0x01:
		return "North America"
	case 0x02:
		return "Europe"
	}
	return fmt.Sprintf("other (%#02x)", h.Destination)
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title: %s\n", h.Title))
	s.WriteString(fmt.Sprintf("map mode: %#02x\n", h.MapMode))
	s.WriteString(fmt.Sprintf("cart type: %#02x\n", h.CartType))
	s.WriteString(fmt.Sprintf("rom size: %dKB\n", h.ROMSizeKB()))
	s.WriteString(fmt.Sprintf("ram size: %dKB\n", h.RAMSizeKB()))
	s.WriteString(fmt.Sprintf("region: %s\n", h.Region()))
	s.WriteString(fmt.Sprintf("version: %d\n", h.Version))
	s.WriteString(fmt.Sprintf("complement: %04x\n", h.Complement))
	s.WriteString(fmt.Sprintf("checksum: %04x\n", h.Checksum))
	return s.String()
}

// Header decodes the internal header of the image.
func (img *Image) Header() (Header, error) {
	b, err := img.ReadBytesAt(headerOffset, headerLen)
	if err != nil {
		return Header{}, err
	}

	// title is space padded ASCII. stop at the first unprintable character
	t := b[:titleLen]
	for i, c := range t {
		if c < 0x20 || c > 0x7e {
			t = t[:i]
			break
		}
	}

	return Header{
		Title:       strings.TrimRight(string(t), " "),
		MapMode:     b[0x15],
		CartType:    b[0x16],
		ROMSize:     b[0x17],
		RAMSize:     b[0x18],
		Destination: b[0x19],
		Licensee:    b[0x1a],
		Version:     b[0x1b],
		Complement:  uint16(b[0x1c]) | uint16(b[0x1d])<<8,
		Checksum:    uint16(b[0x1e]) | uint16(b[0x1f])<<8,
	}, nil
}

// ChecksumValid returns true if the checksum pair stored in the header is
// consistent and matches the checksum calculated for the image.
func (img *Image) ChecksumValid() bool {
	h, err := img.Header()
	if err != nil {
		return false
	}
	if h.Checksum^h.Complement != 0xffff {
		return false
	}
	checksum, _ := Checksum(img)
	return checksum == h.Checksum
}
