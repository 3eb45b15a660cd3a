/*
Package statsdproto implements zero-copy parsing of statsd protocol units.

A protocol unit (PDU) is one statsd metric line, the payload of a UDP
datagram or a single line of a newline-delimited stream:

	<name>:<value>|<type>[|@<sample-rate>][|#<tags>]

Parsing a unit records field offsets into the incoming buffer instead of
copying field bytes out of it. Accessors return subslices of that buffer,
so a proxy or aggregator can route, filter and rewrite metrics with zero
memory allocation per unit, architecture is the following:

 * one read buffer is shared by every unit split out of a datagram
 * Parse scans the buffer once and keeps offsets, not copies
 * accessors (Name, Value, Type, Tags, SampleRate) slice the buffer on demand
 * copying a PDU value copies the offsets and shares the buffer, so passing
   units between goroutine stages is cheap
 * the only allocating operation is WithPrefixSuffix, which builds the
   renamed unit in a single fresh buffer

The parser is permissive the way common statsd servers are: it validates
structure (separators and markers), not field contents. Names may contain
':', values and types are returned as raw bytes for the caller to interpret.

Ideas were borrowed from the following statsd implementations:

 * https://github.com/smira/go-statsd
 * https://github.com/DataDog/datadog-agent
 * https://github.com/statsite/statsite

*/
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
