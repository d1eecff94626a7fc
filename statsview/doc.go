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

// Package statsview optionally serves runtime statistics over HTTP while a
// long patch session runs. The server is only built in when the statsview
// build tag is present:
//
//	go build -tags statsview .
//
// Without the tag Available() returns false and Launch() does nothing.
//
// After launch the graphs are at
//
//	localhost:12600/debug/statsview
//
// with the standard pprof endpoints under /debug/pprof/.
//
// The underlying server is github.com/go-echarts/statsview.
package statsview

// DefaultAddress is used by Launch() when no address is given.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"
