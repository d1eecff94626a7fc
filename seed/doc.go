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

// Package seed decodes the description of a randomized game as delivered by
// the randomizer service. The description is a JSON object:
//
//	{
//		"patch": [{"1573397":[1,2,3,4,5]}, ...],
//		"size": 2,
//		"hash": "abcde12345"
//	}
//
// Other fields in the object, such as the spoiler, are ignored.
//
// The Code() function returns the item code shown on the file select screen
// for the game. The code is read from the patch data.
package seed
