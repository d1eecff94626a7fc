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

package digest

import (
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/tcprescott/pyz3r/rom"
)

// Entry is the fingerprint of the image at the end of a single stage.
type Entry struct {
	Stage string
	Hash  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Hash)
}

// Stages is a chained digest of the image after each stage of the pipeline.
type Stages struct {
	digest  [sha1.Size]byte
	entries []Entry
}

// Hash implements the Digest interface.
func (dig *Stages) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Stages) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.entries = dig.entries[:0]
}

// Record the image at the end of the named stage. The fingerprint is the
// SHA-1 of the previous fingerprint followed by the image data.
func (dig *Stages) Record(stage string, img *rom.Image) string {
	h := sha1.New()
	h.Write(dig.digest[:])
	h.Write(img.Bytes())
	copy(dig.digest[:], h.Sum(nil))

	e := Entry{Stage: stage, Hash: dig.Hash()}
	dig.entries = append(dig.entries, e)

	return e.Hash
}

// Entries returns a copy of the recorded entries in the order they were
// recorded.
func (dig *Stages) Entries() []Entry {
	return append([]Entry{}, dig.entries...)
}

// Write the recorded entries to the writer, one per line.
func (dig *Stages) Write(w io.Writer) {
	for _, e := range dig.entries {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}

// Image returns the SHA-1 of the image. It is not part of any chain.
func Image(img *rom.Image) string {
	return fmt.Sprintf("%x", sha1.Sum(img.Bytes()))
}
