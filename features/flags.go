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

import "github.com/tcprescott/pyz3r/rom"

// flag byte locations.
const (
	musicOffset          = 0x18021a
	quickswapOffset      = 0x18004b
	reduceFlashingOffset = 0x18017f
	msu1ResumeOffset     = 0x18021d
)

func flag(b bool) byte {
	if b {
		return 0x01
	}
	return 0x00
}

// Music enables or disables the in-game music. Disabling the music is useful
// when an MSU-1 soundtrack is used instead.
func Music(img *rom.Image, enabled bool) error {
	// the value in the image is a "music disabled" flag
	return commit(img, "music", []write{{musicOffset, flag(!enabled)}})
}

// Quickswap enables or disables item switching with the shoulder buttons.
func Quickswap(img *rom.Image, enabled bool) error {
	return commit(img, "quickswap", []write{{quickswapOffset, flag(enabled)}})
}

// ReduceFlashing enables or disables the reduction of screen flashing
// effects.
func ReduceFlashing(img *rom.Image, enabled bool) error {
	return commit(img, "reduce flashing", []write{{reduceFlashingOffset, flag(enabled)}})
}

// MSU1Resume enables or disables resumption of MSU-1 tracks. The feature is
// enabled in the image by default so enabling it writes nothing.
func MSU1Resume(img *rom.Image, enabled bool) error {
	if enabled {
		return nil
	}
	return commit(img, "msu1 resume", []write{
		{msu1ResumeOffset, 0x00},
		{msu1ResumeOffset + 1, 0x00},
	})
}
