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

package seed

// location of the file select code in the image.
const (
	codeOffset = 1573397
	codeLen    = 5
)

// the items that can appear in the file select code.
var codeItems = []string{
	"Bow", "Boomerang", "Hookshot", "Bombs",
	"Mushroom", "Magic Powder", "Ice Rod", "Pendant",
	"Bombos", "Ether", "Quake", "Lamp",
	"Hammer", "Shovel", "Flute", "Bugnet", "Book",
	"Empty Bottle", "Green Potion", "Somaria", "Cape",
	"Mirror", "Boots", "Gloves", "Flippers",
	"Moon Pearl", "Shield", "Tunic", "Heart",
	"Map", "Compass", "Big Key",
}

// DefaultCode is the code returned when the patch data does not contain a
// usable code.
var DefaultCode = []string{"Bow", "Boomerang", "Hookshot", "Bombs", "Mushroom"}

// Code returns the names of the five items shown on the file select screen.
// The second return value is false if the patch data does not contain a
// complete code, in which case DefaultCode is returned.
func (md *Metadata) Code() ([]string, bool) {
	b := md.Patch.Seek(codeOffset, codeLen)
	if len(b) != codeLen {
		return append([]string{}, DefaultCode...), false
	}

	code := make([]string, 0, codeLen)
	for _, v := range b {
		if int(v) >= len(codeItems) {
			return append([]string{}, DefaultCode...), false
		}
		code = append(code, codeItems[v])
	}

	return code, true
}
