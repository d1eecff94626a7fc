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

// Permission is consulted before every new log entry. Log requests made
// with a Permission that does not allow logging are dropped.
type Permission interface {
	AllowLogging() bool
}

type permit bool

func (p permit) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are the two fixed permissions. Allow is the usual choice.
// Deny silences a component without the component needing to know.
var (
	Allow Permission = permit(true)
	Deny  Permission = permit(false)
)
