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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tcprescott/pyz3r/curated"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key and value on each line of the file.
const KeySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: file does not exist (%s)"
	Failed      = "prefs: %v"
	BadValue    = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file need not exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(Failed, errors.New("no path for preferences file"))
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from the disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, KeySep) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf(Failed, fmt.Errorf("illegal key %q", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf(Failed, err)
		}
	}
	return nil
}

// read the file and return its entries as strings. a missing file is not an
// error, the returned map is empty and the exists flag is false.
func (dsk *Disk) read() (map[string]string, bool, error) {
	lines := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lines, false, nil
		}
		return nil, false, curated.Errorf(Failed, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate || strings.TrimSpace(line) == "" {
			continue
		}
		kv := strings.SplitN(line, KeySep, 2)
		if len(kv) != 2 {
			continue
		}
		lines[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, true, curated.Errorf(Failed, err)
	}

	return lines, true, nil
}

// Save current preference values to disk. Entries in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	lines, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		lines[k] = v.String()
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(Failed, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, lines[k])
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return curated.Errorf(Failed, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(Failed, err)
	}

	return nil
}

// Load preference values from disk. Values for keys in the top group of the
// command line stack override values in the file.
//
// If the file does not exist and saveOnFail is true then the file is created
// with the current values. If saveOnFail is false then a missing file is
// reported with the NoPrefsFile pattern. Command line values are applied in
// either case.
func (dsk *Disk) Load(saveOnFail bool) error {
	lines, exists, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range lines {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(BadValue, k, err)
			}
		}
	}

	// a new file holds the values as they were before the command line
	// override
	if !exists {
		if !saveOnFail {
			err = curated.Errorf(NoPrefsFile, dsk.path)
		} else {
			err = dsk.Save()
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(BadValue, k, err)
			}
		}
	}

	return err
}
