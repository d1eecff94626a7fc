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

package logger

import (
	"bytes"
	"io"
)

// ANSI control sequences used by the Colorizer.
const (
	penNormal = "\033[0m"
	penTag    = "\033[1;36m"
	penFail   = "\033[1;31m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// log entry is printed in a bright pen. Entries with a tag ending in "!" are
// printed entirely in red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	tag, detail, found := bytes.Cut(p, []byte(": "))
	if !found {
		return c.out.Write(p)
	}

	pen := penTag
	if bytes.HasSuffix(tag, []byte("!")) {
		pen = penFail
	}

	b := make([]byte, 0, len(p)+len(pen)*2+len(penNormal)*2)
	b = append(b, pen...)
	b = append(b, tag...)
	b = append(b, penNormal...)
	b = append(b, ": "...)
	if pen == penFail {
		b = append(b, pen...)
		b = append(b, bytes.TrimSuffix(detail, []byte("\n"))...)
		b = append(b, penNormal...)
		b = append(b, '\n')
	} else {
		b = append(b, detail...)
	}

	_, err = c.out.Write(b)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
