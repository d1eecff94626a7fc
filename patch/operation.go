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

package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tcprescott/pyz3r/curated"
)

// Operation is a single write of one or more bytes to an offset in the image.
type Operation struct {
	Offset int
	Values []byte
}

func (op Operation) String() string {
	return fmt.Sprintf("%#06x: %d bytes", op.Offset, len(op.Values))
}

// End returns the offset immediately after the last byte written by the
// operation.
func (op Operation) End() int {
	return op.Offset + len(op.Values)
}

// Operations is an ordered list of Operation.
type Operations []Operation

// parseOffset accepts only unsigned decimal numbers. strconv.Atoi() would
// also accept a leading sign.
func parseOffset(key string) (int, error) {
	if len(key) == 0 {
		return 0, fmt.Errorf("empty offset")
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("offset %q is not a decimal number", key)
		}
	}
	offset, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("offset %q: %w", key, err)
	}
	return offset, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (ops *Operations) UnmarshalJSON(data []byte) error {
	var entries []map[string]json.RawMessage

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*ops = nil
		return nil
	}

	err := json.Unmarshal(data, &entries)
	if err != nil {
		return curated.Errorf(Malformed, err)
	}

	o := make(Operations, 0, len(entries))
	for i, e := range entries {
		if len(e) != 1 {
			return curated.Errorf(Malformed, fmt.Errorf("entry %d has %d offsets", i, len(e)))
		}

		for k, v := range e {
			offset, err := parseOffset(k)
			if err != nil {
				return curated.Errorf(Malformed, fmt.Errorf("entry %d: %w", i, err))
			}

			// decoding each value as an int rather than a byte means that
			// out of range values can be reported clearly
			var values []int
			err = json.Unmarshal(v, &values)
			if err != nil {
				return curated.Errorf(Malformed, fmt.Errorf("entry %d: %w", i, err))
			}

			op := Operation{
				Offset: offset,
				Values: make([]byte, len(values)),
			}
			for j, b := range values {
				if b < 0 || b > 0xff {
					return curated.Errorf(Malformed, fmt.Errorf("entry %d: value %d is not a byte", i, b))
				}
				op.Values[j] = byte(b)
			}

			o = append(o, op)
		}
	}

	*ops = o
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (ops Operations) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('[')
	for i, op := range ops {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"%d":[`, op.Offset)
		for j, v := range op.Values {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(v)))
		}
		b.WriteString("]}")
	}
	b.WriteByte(']')

	return b.Bytes(), nil
}

// Seek returns up to n bytes that the operations would write starting at
// offset. The operation with the highest offset not greater than the
// requested offset is used. Where more than one operation starts at that
// offset the last one is used, so the result is what Apply would leave in
// the image for that operation's range. The result will be shorter than n if the
// operation ends before offset+n and empty if no operation covers offset.
func (ops Operations) Seek(offset int, n int) []byte {
	var found *Operation

	for i := range ops {
		if ops[i].Offset > offset {
			continue
		}
		if found == nil || ops[i].Offset >= found.Offset {
			found = &ops[i]
		}
	}

	if found == nil || offset >= found.End() {
		return []byte{}
	}

	v := found.Values[offset-found.Offset:]
	if len(v) > n {
		v = v[:n]
	}

	b := make([]byte, len(v))
	copy(b, v)
	return b
}
