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

// Package digest creates fingerprints of images as they pass through the
// patching pipeline. The Stages type chains the fingerprints so that the
// final hash depends on the image after every stage and on the order of the
// stages. Two runs with identical inputs produce identical hashes. A
// difference in the hash of any stage shows where two runs diverged.
package digest

// Digest implementations compute a hash of the data they have seen.
type Digest interface {
	Hash() string
	ResetDigest()
}
