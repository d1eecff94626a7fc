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

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/patch"
)

// Sentinal error patterns.
const (
	Malformed = "seed: malformed: %v"
	NotFound  = "seed: not found: %v"
)

// the largest image size, in megabytes, that a seed can ask for.
const maxSizeMB = 16

// Metadata is the description of a single randomized game.
type Metadata struct {
	Patch  patch.Operations `json:"patch"`
	SizeMB int              `json:"size"`
	Hash   string           `json:"hash"`
}

func (md *Metadata) String() string {
	return fmt.Sprintf("%s: %d operations, %dMB", md.Hash, len(md.Patch), md.SizeMB)
}

// Decode reads the metadata from the reader.
func Decode(r io.Reader) (*Metadata, error) {
	var md Metadata

	err := json.NewDecoder(r).Decode(&md)
	if err != nil {
		if curated.IsAny(err) {
			return nil, curated.Errorf("seed: %v", err)
		}
		return nil, curated.Errorf(Malformed, err)
	}

	if md.SizeMB < 0 || md.SizeMB > maxSizeMB {
		return nil, curated.Errorf(Malformed, fmt.Errorf("size of %dMB is not possible", md.SizeMB))
	}

	return &md, nil
}

// Load reads the metadata from the named file.
func Load(filename string) (*Metadata, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NotFound, filename)
		}
		return nil, curated.Errorf("seed: %v", err)
	}
	defer f.Close()

	return Decode(f)
}
