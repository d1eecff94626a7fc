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

package romloader

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tcprescott/pyz3r/curated"
	"github.com/tcprescott/pyz3r/rom"
)

// ExpectedSHA256 is the hash of the unheadered Japan 1.0 image.
const ExpectedSHA256 = "794e040b02c7591b59ad8843b51e7c619b88f87cddc6083a8e7a4027b96a2271"

// Sentinal error patterns.
const (
	ChecksumMismatch = "romloader: sha256 is %s, expected %s. Verify the source ROM is an unheadered Japan 1.0 Link to the Past ROM."
	Failed           = "romloader: %v"
)

// Loader specifies the base ROM and holds the loaded data.
type Loader struct {
	// filename or URL of the base ROM
	Filename string

	// expected SHA-256 hash of the data. an empty string indicates that the
	// hash need not be verified. after a successful load the value will be
	// the hash of the loaded data
	Hash string

	// copy of the loaded data with the copier header removed
	Data []byte

	// the loaded file had a copier header
	Headered bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The Hash field is set to ExpectedSHA256.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Hash:     ExpectedSHA256,
	}
}

// ShortName returns the filename of the base ROM without the path or the
// file extension.
func (rl Loader) ShortName() string {
	s := filepath.Base(rl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// Load the base ROM. Calling Load() more than once has no effect.
func (rl *Loader) Load() error {
	if rl.HasLoaded() {
		return nil
	}

	data, err := Fetch(rl.Filename)
	if err != nil {
		return err
	}

	data, headered := rom.StripCopierHeader(data)

	hash := fmt.Sprintf("%x", sha256.Sum256(data))
	if rl.Hash != "" && !strings.EqualFold(rl.Hash, hash) {
		return curated.Errorf(ChecksumMismatch, hash, rl.Hash)
	}

	rl.Hash = hash
	rl.Data = data
	rl.Headered = headered

	return nil
}

// Image returns a new rom.Image containing the loaded data. The base ROM
// will be loaded if necessary.
func (rl *Loader) Image() (*rom.Image, error) {
	if err := rl.Load(); err != nil {
		return nil, err
	}
	return rom.Load(rl.Data), nil
}

// Fetch returns the contents of the named file. Names with an http or https
// scheme are downloaded. Anything else is treated as a local file.
func Fetch(name string) ([]byte, error) {
	scheme := "file"
	if u, err := url.Parse(name); err == nil && u.Scheme != "" {
		scheme = strings.ToLower(u.Scheme)
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(name)
		if err != nil {
			return nil, curated.Errorf(Failed, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, curated.Errorf(Failed, fmt.Errorf("%s: %s", name, resp.Status))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, curated.Errorf(Failed, err)
		}
		return data, nil

	case "file":
		data, err := os.ReadFile(strings.TrimPrefix(name, "file://"))
		if err != nil {
			return nil, curated.Errorf(Failed, err)
		}
		return data, nil
	}

	// a single letter scheme is most likely a windows drive letter
	if len(scheme) == 1 {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, curated.Errorf(Failed, err)
		}
		return data, nil
	}

	return nil, curated.Errorf(Failed, fmt.Errorf("unsupported URL scheme (%s)", scheme))
}
