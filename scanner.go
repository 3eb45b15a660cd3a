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

import "bytes"

// LineScanner splits a datagram or stream chunk into protocol units without
// copying. Clients batch several units into one UDP packet separated by '\n',
// and a single packet holding a single unit usually has no trailing newline;
// the scanner handles both, skipping empty lines and stripping an optional
// '\r' before the newline.
//
// Each line returned by Line aliases the scanned buffer, so lines stay valid
// as long as the buffer does, including after further Scan calls.
type LineScanner struct {
	rest []byte
	line []byte
}

// NewLineScanner returns a scanner over buf, positioned before the first
// line. The scanner retains buf; the caller must not mutate it while any
// returned line is in use.
func NewLineScanner(buf []byte) LineScanner {
	return LineScanner{rest: buf}
}

// Reset makes the scanner read from buf, dropping any previous state. It
// allows a single scanner to be reused across reads of a socket buffer.
func (s *LineScanner) Reset(buf []byte) {
	s.rest = buf
	s.line = nil
}

// Scan advances to the next non-empty line, reporting whether one exists.
func (s *LineScanner) Scan() bool {
	for len(s.rest) > 0 {
		line := s.rest
		if i := bytes.IndexByte(s.rest, '\n'); i >= 0 {
			line, s.rest = s.rest[:i], s.rest[i+1:]
		} else {
			s.rest = nil
		}

		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}

		if len(line) == 0 {
			continue
		}

		s.line = line

		return true
	}

	s.line = nil

	return false
}

// Line returns the current line. It is valid after Scan has returned true
// and until the buffer given to the scanner is mutated.
func (s *LineScanner) Line() []byte {
	return s.line
}

// TagScanner iterates the comma-separated tags of a unit's tags payload,
// as returned by PDU.Tags. Like LineScanner it never copies, and empty
// elements between commas are skipped.
type TagScanner struct {
	rest []byte
	tag  []byte
}

// NewTagScanner returns a scanner over a tags payload.
func NewTagScanner(tags []byte) TagScanner {
	return TagScanner{rest: tags}
}

// Scan advances to the next tag, reporting whether one exists.
func (s *TagScanner) Scan() bool {
	for len(s.rest) > 0 {
		tag := s.rest
		if i := bytes.IndexByte(s.rest, ','); i >= 0 {
			tag, s.rest = s.rest[:i], s.rest[i+1:]
		} else {
			s.rest = nil
		}

		if len(tag) == 0 {
			continue
		}

		s.tag = tag

		return true
	}

	s.tag = nil

	return false
}

// Tag returns the current tag, a "name" or "name:value" chunk.
func (s *TagScanner) Tag() []byte {
	return s.tag
}

// SplitTag splits one tag into its name and value. Only the first ':' is a
// separator, the value keeps any further ':' bytes. Tags without a value
// return a nil value.
func SplitTag(tag []byte) (name, value []byte) {
	i := bytes.IndexByte(tag, ':')
	if i < 0 {
		return tag, nil
	}

	return tag[:i], tag[i+1:]
}
