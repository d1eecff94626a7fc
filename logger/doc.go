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

// Package logger is the central log for pyz3r. Every stage of the patching
// pipeline logs what it did under a tag naming the stage, for example:
//
//	logger.Logf(logger.Allow, "expand", "%dMB", 4)
//
// Entries are kept in memory, up to a maximum number of entries, and can be
// written out with Write() or Tail(). Repeated entries are folded into a
// single entry with a repeat count.
//
// The log can also be echoed to an io.Writer as entries are added. The
// Colorizer type can wrap the echo writer so that the tag of each entry
// stands out. Colour is only useful when the output is a terminal and
// IsTerminal() is provided to check that.
package logger
