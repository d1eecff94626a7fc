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

// Package modalflag wraps flag.FlagSet so that a command line can select a
// mode of operation, with each mode having its own set of flags.
//
// Arguments are registered with NewArgs() and parsed with Parse(). If
// sub-modes have been added with AddSubModes() then the first non-flag
// argument is compared (case insensitively) against the list of modes. A
// match selects that mode and is removed from the remaining arguments.
// Anything else selects the default mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PATCH", "VERIFY", "INFO")
//	p, err := md.Parse()
//
// Having decided on the mode, the program calls NewMode() and adds the flags
// for that mode before calling Parse() again:
//
//	switch md.Mode() {
//	case "VERIFY":
//		md.NewMode()
//		hash := md.AddString("hash", "", "expected sha256 of the base ROM")
//		p, err = md.Parse()
//		...
//		verify(*hash, md.GetArg(0))
//	}
//
// Parse() returns ParseHelp when the user has asked for help. The help text
// has already been written to Output in that case and the program should
// exit without error.
package modalflag
