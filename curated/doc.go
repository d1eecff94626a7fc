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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and a list of values in the same way as fmt.Errorf(). The pattern
// is remembered and is what identifies the error later on.
//
// Each package in pyz3r that can fail in a way the caller might want to react
// to declares its patterns as exported string constants. For example, the rom
// package declares:
//
//	const OutOfBounds = "rom: out of bounds: offset %#x (length %d, image size %d)"
//
// and a caller can test for it:
//
//	err := img.WriteBytesAt(offset, values)
//	if curated.Is(err, rom.OutOfBounds) {
//		...
//	}
//
// Is() only matches the outermost error. Has() searches the entire chain of
// curated values, which is what is needed once an error has been wrapped by
// one or more layers:
//
//	err = curated.Errorf("session: %v", err)
//	curated.Has(err, rom.OutOfBounds) // true
//	curated.Is(err, rom.OutOfBounds)  // false
//
// The Error() implementation normalises the chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ", so that
//
//	patch: patch: operation 3: rom: out of bounds
//
// is reported as
//
//	patch: operation 3: rom: out of bounds
//
// which means a function does not need to worry whether its caller has
// already prefixed the package name.
//
// Curated errors also implement Unwrap(), returning the first value that is
// itself an error. This lets errors.Is() and errors.As() from the standard
// library see through curated wrapping, for example to find an
// *os.PathError.
package curated
