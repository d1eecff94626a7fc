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

// HeartSpeedSetting is the interval of the low health warning beep.
type HeartSpeedSetting string

// List of valid HeartSpeedSetting values.
const (
	HeartSpeedOff     HeartSpeedSetting = "off"
	HeartSpeedDouble  HeartSpeedSetting = "double"
	HeartSpeedNormal  HeartSpeedSetting = "normal"
	HeartSpeedHalf    HeartSpeedSetting = "half"
	HeartSpeedQuarter HeartSpeedSetting = "quarter"
)

const heartSpeedOffset = 0x180033

var heartSpeeds = map[HeartSpeedSetting]byte{
	HeartSpeedOff:     0,
	HeartSpeedDouble:  16,
	HeartSpeedNormal:  32,
	HeartSpeedHalf:    64,
	HeartSpeedQuarter: 128,
}

// ParseHeartSpeed converts a string to a HeartSpeedSetting. The comparison
// is case insensitive. The empty string is HeartSpeedNormal.
func ParseHeartSpeed(s string) (HeartSpeedSetting, error) {
	v := HeartSpeedSetting(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return HeartSpeedNormal, nil
	}
	if _, ok := heartSpeeds[v]; !ok {
		return "", curated.Errorf(InvalidOption, "heart speed", s)
	}
	return v, nil
}

// HeartSpeed sets the interval of the low health warning beep.
func HeartSpeed(img *rom.Image, s HeartSpeedSetting) error {
	if s == "" {
		s = HeartSpeedNormal
	}
	v, ok := heartSpeeds[s]
	if !ok {
		return curated.Errorf(InvalidOption, "heart speed", s)
	}
	return commit(img, "heart speed", []write{{heartSpeedOffset, v}})
}

// MenuSpeedSetting is the speed at which the item menu opens and closes.
type MenuSpeedSetting string

// List of valid MenuSpeedSetting values.
const (
	MenuSpeedInstant MenuSpeedSetting = "instant"
	MenuSpeedFast    MenuSpeedSetting = "fast"
	MenuSpeedNormal  MenuSpeedSetting = "normal"
	MenuSpeedSlow    MenuSpeedSetting = "slow"
)

const menuSpeedOffset = 0x180048

var menuSpeeds = map[MenuSpeedSetting]byte{
	MenuSpeedInstant: 0xe8,
	MenuSpeedFast:    0x10,
	MenuSpeedNormal:  0x08,
	MenuSpeedSlow:    0x04,
}

// the menu scroll routines. an instant menu replaces the first byte of each
// with 0x20. otherwise the original value is restored.
var menuScroll = []write{
	{0x6dd9a, 0x11},
	{0x6df2a, 0x12},
	{0x6e0e9, 0x12},
}

const menuScrollInstant = 0x20

// ParseMenuSpeed converts a string to a MenuSpeedSetting. The comparison is
// case insensitive. The empty string is MenuSpeedNormal.
func ParseMenuSpeed(s string) (MenuSpeedSetting, error) {
	v := MenuSpeedSetting(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return MenuSpeedNormal, nil
	}
	if _, ok := menuSpeeds[v]; !ok {
		return "", curated.Errorf(InvalidOption, "menu speed", s)
	}
	return v, nil
}

// MenuSpeed sets the speed of the item menu.
func MenuSpeed(img *rom.Image, s MenuSpeedSetting) error {
	if s == "" {
		s = MenuSpeedNormal
	}
	v, ok := menuSpeeds[s]
	if !ok {
		return curated.Errorf(InvalidOption, "menu speed", s)
	}

	w := []write{{menuSpeedOffset, v}}
	for _, m := range menuScroll {
		if s == MenuSpeedInstant {
			m.value = menuScrollInstant
		}
		w = append(w, m)
	}

	return commit(img, "menu speed", w)
}
