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
	"fmt"
	"strings"

	"github.com/tcprescott/pyz3r/rom"
)

// Options is the complete set of feature options.
type Options struct {
	HeartSpeed     HeartSpeedSetting
	HeartColor     HeartColorSetting
	MenuSpeed      MenuSpeedSetting
	Music          bool
	Quickswap      bool
	ReduceFlashing bool
	MSU1Resume     bool
}

// DefaultOptions returns the options used when the user has not chosen
// otherwise.
func DefaultOptions() Options {
	return Options{
		HeartSpeed:     HeartSpeedHalf,
		HeartColor:     HeartColorRed,
		MenuSpeed:      MenuSpeedNormal,
		Music:          true,
		Quickswap:      false,
		ReduceFlashing: false,
		MSU1Resume:     true,
	}
}

func (o Options) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("heart speed: %s, ", o.HeartSpeed))
	s.WriteString(fmt.Sprintf("heart color: %s, ", o.HeartColor))
	s.WriteString(fmt.Sprintf("menu speed: %s, ", o.MenuSpeed))
	s.WriteString(fmt.Sprintf("music: %v, ", o.Music))
	s.WriteString(fmt.Sprintf("quickswap: %v, ", o.Quickswap))
	s.WriteString(fmt.Sprintf("reduce flashing: %v, ", o.ReduceFlashing))
	s.WriteString(fmt.Sprintf("msu1 resume: %v", o.MSU1Resume))
	return s.String()
}

// Validate returns an error if any of the enumerated options is not a known
// value. The empty string is valid for all enumerated options and means the
// option's normal value.
func (o Options) Validate() error {
	if _, err := ParseHeartSpeed(string(o.HeartSpeed)); err != nil {
		return err
	}
	if _, err := ParseHeartColor(string(o.HeartColor)); err != nil {
		return err
	}
	if _, err := ParseMenuSpeed(string(o.MenuSpeed)); err != nil {
		return err
	}
	return nil
}

// Apply all options to the image. The options are validated before the image
// is changed.
func (o Options) Apply(img *rom.Image) error {
	if err := o.Validate(); err != nil {
		return err
	}

	// any write can only fail now if the image is too small. ParseX()
	// functions normalise case so the values are passed through them again
	hs, _ := ParseHeartSpeed(string(o.HeartSpeed))
	hc, _ := ParseHeartColor(string(o.HeartColor))
	ms, _ := ParseMenuSpeed(string(o.MenuSpeed))

	if err := HeartSpeed(img, hs); err != nil {
		return err
	}
	if err := HeartColor(img, hc); err != nil {
		return err
	}
	if err := MenuSpeed(img, ms); err != nil {
		return err
	}
	if err := Quickswap(img, o.Quickswap); err != nil {
		return err
	}
	if err := Music(img, o.Music); err != nil {
		return err
	}
	if err := ReduceFlashing(img, o.ReduceFlashing); err != nil {
		return err
	}
	if err := MSU1Resume(img, o.MSU1Resume); err != nil {
		return err
	}

	return nil
}
