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

// span is a half-open [start, end) byte range into the underlying buffer.
// The zero span means the field is absent: end is never 0 for a field that
// was seen on the wire, since every marker payload starts past the '|'.
type span struct {
	start, end int
}

func (s span) set() bool {
	return s.end != 0
}

func (s span) shift(offset int) span {
	if !s.set() {
		return s
	}

	return span{s.start + offset, s.end + offset}
}

// PDU is a single parsed statsd protocol unit.
//
// A PDU holds the raw bytes of the unit plus field offsets into them, so
// accessors slice instead of copying. Copying a PDU value is cheap: the copy
// shares the underlying buffer with the original. The buffer must not be
// mutated while any PDU referring to it is alive.
//
// The zero PDU is not valid, units are produced by Parse.
type PDU struct {
	underlying []byte

	// valueIndex points one past the ':' separating name from value,
	// typeIndex one past the '|' separating value from type, and
	// typeIndexEnd at the '|' opening the first optional marker (or at the
	// end of the buffer when there is none).
	valueIndex   int
	typeIndex    int
	typeIndexEnd int

	sampleRate span
	tags       span
}

// Name returns the metric name, the bytes before the value separator.
// Names may themselves contain ':', the separator is the last ':' before
// the type field.
func (p PDU) Name() []byte {
	return p.underlying[:p.valueIndex-1]
}

// Value returns the raw metric value. No numeric validation is performed,
// the bytes are whatever the client sent between the separators.
func (p PDU) Value() []byte {
	return p.underlying[p.valueIndex : p.typeIndex-1]
}

// Type returns the metric type field ("c", "g", "ms", "h", "s", ...).
func (p PDU) Type() []byte {
	return p.underlying[p.typeIndex:p.typeIndexEnd]
}

// SampleRate returns the payload of the "|@" marker, or nil when the unit
// carries no sample rate.
func (p PDU) SampleRate() []byte {
	if !p.sampleRate.set() {
		return nil
	}

	return p.underlying[p.sampleRate.start:p.sampleRate.end]
}

// Tags returns the payload of the "|#" marker, or nil when the unit carries
// no tags. Use a TagScanner to iterate individual tags.
func (p PDU) Tags() []byte {
	if !p.tags.set() {
		return nil
	}

	return p.underlying[p.tags.start:p.tags.end]
}

// Len returns the length of the unit in bytes.
func (p PDU) Len() int {
	return len(p.underlying)
}

// Bytes returns the raw unit, suitable for forwarding as-is. The slice
// aliases the parse buffer and must not be modified.
func (p PDU) Bytes() []byte {
	return p.underlying
}

// String returns the raw unit as a string.
func (p PDU) String() string {
	return string(p.underlying)
}

// WithPrefixSuffix returns a copy of the unit with prefix and suffix
// attached to the metric name. Either may be nil. The copy is built in a
// single fresh buffer and does not alias the original, so the original unit
// stays valid and unchanged.
func (p PDU) WithPrefixSuffix(prefix, suffix []byte) PDU {
	offset := len(prefix) + len(suffix)

	buf := make([]byte, 0, len(p.underlying)+offset)
	buf = append(buf, prefix...)
	buf = append(buf, p.Name()...)
	buf = append(buf, suffix...)
	buf = append(buf, p.underlying[p.valueIndex-1:]...)

	return PDU{
		underlying:   buf,
		valueIndex:   p.valueIndex + offset,
		typeIndex:    p.typeIndex + offset,
		typeIndexEnd: p.typeIndexEnd + offset,
		sampleRate:   p.sampleRate.shift(offset),
		tags:         p.tags.shift(offset),
	}
}
