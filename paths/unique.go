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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The function does not check
// for this.
//
// Used to name the patched image when no output file has been given. The
// format of the returned string is:
//
//	prepend_hash_YYYYMMDD_HHMMSS
//
// or if the hash is empty:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, hash string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	h := strings.TrimSpace(hash)
	if len(h) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, h, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
