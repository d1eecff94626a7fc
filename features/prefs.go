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
	"github.com/tcprescott/pyz3r/paths"
	"github.com/tcprescott/pyz3r/prefs"
)

// Preferences stores Options on disk, along with the path of the sprite file
// to use. Values are checked when they are set so an invalid value in the
// preferences file, or on the command line, is rejected.
type Preferences struct {
	dsk *prefs.Disk

	HeartSpeed     prefs.String
	HeartColor     prefs.String
	MenuSpeed      prefs.String
	Music          prefs.Bool
	Quickswap      prefs.Bool
	ReduceFlashing prefs.Bool
	MSU1Resume     prefs.Bool
	Sprite         prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// prefs keys.
const (
	keyHeartSpeed     = "patch.heartspeed"
	keyHeartColor     = "patch.heartcolor"
	keyMenuSpeed      = "patch.menuspeed"
	keyMusic          = "patch.music"
	keyQuickswap      = "patch.quickswap"
	keyReduceFlashing = "patch.reduceflashing"
	keyMSU1Resume     = "patch.msu1resume"
	keySprite         = "patch.sprite"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath("", "preferences"))
}

// NewPreferencesFromFile creates a Preferences instance backed by the named
// file. The file need not exist.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.HeartSpeed.SetHookPre(func(v prefs.Value) error {
		_, err := ParseHeartSpeed(v.(string))
		return err
	})
	p.HeartColor.SetHookPre(func(v prefs.Value) error {
		_, err := ParseHeartColor(v.(string))
		return err
	})
	p.MenuSpeed.SetHookPre(func(v prefs.Value) error {
		_, err := ParseMenuSpeed(v.(string))
		return err
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, err := range []error{
		p.dsk.Add(keyHeartSpeed, &p.HeartSpeed),
		p.dsk.Add(keyHeartColor, &p.HeartColor),
		p.dsk.Add(keyMenuSpeed, &p.MenuSpeed),
		p.dsk.Add(keyMusic, &p.Music),
		p.dsk.Add(keyQuickswap, &p.Quickswap),
		p.dsk.Add(keyReduceFlashing, &p.ReduceFlashing),
		p.dsk.Add(keyMSU1Resume, &p.MSU1Resume),
		p.dsk.Add(keySprite, &p.Sprite),
	} {
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all values to the values of DefaultOptions() and
// removes the sprite.
func (p *Preferences) SetDefaults() error {
	d := DefaultOptions()
	for _, err := range []error{
		p.HeartSpeed.Set(string(d.HeartSpeed)),
		p.HeartColor.Set(string(d.HeartColor)),
		p.MenuSpeed.Set(string(d.MenuSpeed)),
		p.Music.Set(d.Music),
		p.Quickswap.Set(d.Quickswap),
		p.ReduceFlashing.Set(d.ReduceFlashing),
		p.MSU1Resume.Set(d.MSU1Resume),
		p.Sprite.Set(""),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Options returns the preferences as an Options value.
func (p *Preferences) Options() Options {
	// values have been checked by the pre-hooks so parsing cannot fail
	hs, _ := ParseHeartSpeed(p.HeartSpeed.String())
	hc, _ := ParseHeartColor(p.HeartColor.String())
	ms, _ := ParseMenuSpeed(p.MenuSpeed.String())

	return Options{
		HeartSpeed:     hs,
		HeartColor:     hc,
		MenuSpeed:      ms,
		Music:          p.Music.Get().(bool),
		Quickswap:      p.Quickswap.Get().(bool),
		ReduceFlashing: p.ReduceFlashing.Get().(bool),
		MSU1Resume:     p.MSU1Resume.Get().(bool),
	}
}

// SetOptions changes the preferences to the values in the Options.
func (p *Preferences) SetOptions(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	for _, err := range []error{
		p.HeartSpeed.Set(string(o.HeartSpeed)),
		p.HeartColor.Set(string(o.HeartColor)),
		p.MenuSpeed.Set(string(o.MenuSpeed)),
		p.Music.Set(o.Music),
		p.Quickswap.Set(o.Quickswap),
		p.ReduceFlashing.Set(o.ReduceFlashing),
		p.MSU1Resume.Set(o.MSU1Resume),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
