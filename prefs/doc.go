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

// Package prefs stores user preferences on disk. Preference values are
// created with the Bool, String and Int types and are added to a Disk
// instance under a key:
//
//	var music prefs.Bool
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("", "preferences"))
//	dsk.Add("patch.music", &music)
//	dsk.Load(true)
//
// The file is plain text with one "key :: value" per line, sorted by key.
// Several Disk instances can share the same file. Save() only replaces the
// entries that the instance knows about and keeps all other lines.
//
// Values can be overridden for the duration of a single run with the
// command line stack. A string of the form "key::value; key::value" is
// pushed with PushCommandLineStack() and any key in the top group of the
// stack takes precedence over the file when Load() is called.
package prefs
