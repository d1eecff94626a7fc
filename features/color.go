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

package features

import (
	"strings"

	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/rom"
)

// HeartColorSetting is the colour of the hearts in the HUD.
type HeartColorSetting string

// List of valid HeartColorSetting values.
const (
	HeartColorRed    HeartColorSetting = "red"
	HeartColorBlue   HeartColorSetting = "blue"
	HeartColorGreen  HeartColorSetting = "green"
	HeartColorYellow HeartColorSetting = "yellow"
)

// selector byte for images of revision 4 and later.
const heartColorSelector = 0x187020

var heartColorSelectors = map[HeartColorSetting]byte{
	HeartColorRed:    0,
	HeartColorBlue:   1,
	HeartColorGreen:  2,
	HeartColorYellow: 3,
}

// legacy images have the palette value written to each heart in the HUD and
// a second value written to the file select screen.
const (
	legacyHUDOffset    = 0x6fa1e
	legacyHUDCount     = 10
	legacyFileSelector = 0x65561
)

type legacyColor struct {
	hud        byte
	fileSelect byte
}

var legacyHeartColors = map[HeartColorSetting]legacyColor{
	HeartColorRed:    {36, 5},
	HeartColorBlue:   {44, 13},
	HeartColorGreen:  {60, 25},
	HeartColorYellow: {40, 9},
}

// ParseHeartColor converts a string to a HeartColorSetting. The comparison
// is case insensitive. The empty string is HeartColorRed.
func ParseHeartColor(s string) (HeartColorSetting, error) {
	v := HeartColorSetting(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return HeartColorRed, nil
	}
	if _, ok := heartColorSelectors[v]; !ok {
		return "", curated.Errorf(InvalidOption, "heart color", s)
	}
	return v, nil
}

// heart colour writes indexed by whether the image is a legacy revision.
var heartColorWrites = map[bool]func(HeartColorSetting) []write{
	false: func(c HeartColorSetting) []write {
		return []write{{heartColorSelector, heartColorSelectors[c]}}
	},
	true: func(c HeartColorSetting) []write {
		l := legacyHeartColors[c]
		w := make([]write, 0, legacyHUDCount+1)
		for i := 0; i < legacyHUDCount; i++ {
			w = append(w, write{legacyHUDOffset + i*2, l.hud})
		}
		return append(w, write{legacyFileSelector, l.fileSelect})
	},
}

// HeartColor sets the colour of the hearts in the HUD. The location of the
// write depends on the revision of the image.
func HeartColor(img *rom.Image, c HeartColorSetting) error {
	if c == "" {
		c = HeartColorRed
	}
	if _, ok := heartColorSelectors[c]; !ok {
		return curated.Errorf(InvalidOption, "heart color", c)
	}
	return commit(img, "heart color", heartColorWrites[img.Revision().Legacy()](c))
}
