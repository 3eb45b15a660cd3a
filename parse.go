package statsdproto

/*

Copyright (c) 2021 the statsdproto authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

import (
	"bytes"
	"errors"
)

// ErrInvalid is returned by Parse for any buffer that is not a structurally
// valid statsd protocol unit: missing separators, a duplicate sample rate or
// tags marker, or a marker of unknown kind.
var ErrInvalid = errors.New("statsdproto: invalid protocol unit")

// Parse scans one protocol unit and records its field offsets. The unit must
// not include a trailing newline, use a LineScanner to split datagrams and
// streams into units first.
//
// Parse retains line: the returned PDU and every slice produced by its
// accessors alias it. The caller must not mutate line afterwards.
//
// Validation is structural only. Parse requires the name/value separator,
// the type separator and well-formed optional markers, but does not inspect
// field contents: empty names, empty types and non-numeric values all pass
// through, matching what permissive statsd servers accept. A '|' too close
// to the end of the unit to open a marker is treated as part of the
// preceding field rather than rejected.
func Parse(line []byte) (PDU, error) {
	length := len(line)

	// Every unit has a type field, so the first '|' anchors everything else.
	i := bytes.IndexByte(line, '|')
	if i < 0 {
		return PDU{}, ErrInvalid
	}
	typeIndex := i + 1

	// Names may contain ':', so the value starts after the last ':' before
	// the type separator, not after the first one in the buffer.
	valueIndex := 0
	for {
		i = bytes.IndexByte(line[valueIndex:typeIndex], ':')
		if i < 0 {
			if valueIndex == 0 {
				return PDU{}, ErrInvalid
			}

			break
		}

		valueIndex += i + 1
	}

	typeIndexEnd := length

	var sampleRate, tags span

	// Walk the remaining '|' bytes looking for optional markers. A marker
	// needs its kind byte plus at least one payload byte before the end of
	// the unit; any '|' closer to the end than that belongs to the field
	// still open at that point.
	scanIndex := typeIndex
	for {
		i = bytes.IndexByte(line[scanIndex:], '|')
		if i < 0 {
			break
		}

		index := scanIndex + i
		if index+2 >= length {
			break
		}

		if index < typeIndexEnd {
			typeIndexEnd = index
		}

		switch line[index+1] {
		case '@':
			if sampleRate.set() {
				return PDU{}, ErrInvalid
			}

			sampleRate = span{index + 2, length}
			if tags.set() {
				tags.end = index
			}
		case '#':
			if tags.set() {
				return PDU{}, ErrInvalid
			}

			tags = span{index + 2, length}
			if sampleRate.set() {
				sampleRate.end = index
			}
		default:
			return PDU{}, ErrInvalid
		}

		scanIndex = index + 1
	}

	return PDU{
		underlying:   line,
		valueIndex:   valueIndex,
		typeIndex:    typeIndex,
		typeIndexEnd: typeIndexEnd,
		sampleRate:   sampleRate,
		tags:         tags,
	}, nil
}
