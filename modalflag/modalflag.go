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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. the mode can be inspected with
	// Mode() and the remaining arguments with RemainingArgs().
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output.
	ParseHelp

	// an error occurred and is returned as the second return value.
	ParseError
)

// Modes provides an easy way of handling command line arguments.
//
// The Output field should be set before calling Parse() or help messages will
// be lost.
type Modes struct {
	Output io.Writer

	flags *flag.FlagSet
	args  []string
	idx   int

	// the mode selected by the most recent call to Parse() and the list of
	// modes selected by previous calls
	mode string
	path []string

	subModes    []string
	defaultMode string

	additionalHelp string
}

// NewArgs prepares Modes for a new set of arguments. Any previously parsed
// arguments or modes are forgotten.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.mode = ""
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode. Flags and sub-modes from the previous mode are discarded.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.subModes = md.subModes[:0]
	md.defaultMode = ""
	md.additionalHelp = ""
}

// Mode returns the mode selected by the most recent call to Parse(). The
// empty string is returned if no sub-modes were added.
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns the sequence of modes selected so far, separated by a forward
// slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// AdditionalHelp adds text that is written after the flag and mode summaries
// when help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes adds the list of modes that can be selected by the next call
// to Parse(). The first mode in the list is the default mode.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
	if len(md.subModes) > 0 && md.defaultMode == "" {
		md.defaultMode = md.subModes[0]
	}
}

// AddDefaultSubMode adds a single mode and makes it the default, regardless
// of the order in which modes were added.
func (md *Modes) AddDefaultSubMode(mode string) {
	mode = strings.ToUpper(mode)
	md.subModes = append(md.subModes, mode)
	md.defaultMode = mode
}

// Parse the arguments given to NewArgs() according to the flags and modes
// added since the last call to NewMode().
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}

		// an unrecognised flag when there are sub-modes available is probably
		// a flag intended for the default mode. leave the arguments alone and
		// let the default mode parse them
		if len(md.subModes) > 0 {
			md.selectMode(md.defaultMode)
			return ParseContinue, nil
		}

		return ParseError, err
	}

	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	if md.flags.NArg() > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				md.idx++
				md.selectMode(m)
				return ParseContinue, nil
			}
		}
	}

	md.selectMode(md.defaultMode)

	return ParseContinue, nil
}

func (md *Modes) selectMode(mode string) {
	md.mode = mode
	md.path = append(md.path, mode)
}

// RemainingArgs returns the arguments that have not yet been consumed by
// Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns the numbered argument from the list of remaining
// arguments. The empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that was set on the command line during the
// most recent call to Parse().
func (md *Modes) Visit(fn func(name string, value string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name, f.Value.String())
	})
}

// String returns a summary of the current parse state.
func (md *Modes) String() string {
	return fmt.Sprintf("mode: %s, args: %v", md.Path(), md.RemainingArgs())
}
