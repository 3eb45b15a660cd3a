package statsdproto

import (
	"testing"
)

var benchLine = []byte("hello_world.worldworld_i_am_a_pumpkin:3|c|@1.0|#tags:tags,tags:tags,tags:tags,tags:tags")

// benchPDU keeps the compiler from eliding benchmark bodies
var benchPDU PDU

func BenchmarkParse(b *testing.B) {
	b.SetBytes(int64(len(benchLine)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		pdu, err := Parse(benchLine)
		if err != nil {
			b.Fatal(err)
		}

		benchPDU = pdu
	}
}

func BenchmarkParseVariants(b *testing.B) {
	lines := [][]byte{
		[]byte("foo.bar:3|c"),
		[]byte("glork:320|ms|@0.1"),
		[]byte("some.long.service.name.req.count:1|c|#env:prod,region:us-east-1"),
		[]byte("uniques:765|s"),
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		pdu, err := Parse(lines[i%len(lines)])
		if err != nil {
			b.Fatal(err)
		}

		benchPDU = pdu
	}
}

func BenchmarkParseParallel(b *testing.B) {
	b.SetBytes(int64(len(benchLine)))
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Parse(benchLine); err != nil {
				panic(err)
			}
		}
	})
}

func BenchmarkAccessors(b *testing.B) {
	pdu, err := Parse(benchLine)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	total := 0
	for i := 0; i < b.N; i++ {
		total += len(pdu.Name()) + len(pdu.Value()) + len(pdu.Type()) +
			len(pdu.SampleRate()) + len(pdu.Tags())
	}

	if total == 0 {
		b.Fatal("accessors returned nothing")
	}
}

func BenchmarkWithPrefixSuffix(b *testing.B) {
	pdu, err := Parse(benchLine)
	if err != nil {
		b.Fatal(err)
	}

	prefix := []byte("dc1.")
	suffix := []byte(".raw")

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		benchPDU = pdu.WithPrefixSuffix(prefix, suffix)
	}
}

func BenchmarkLineScanner(b *testing.B) {
	var datagram []byte
	for i := 0; i < 25; i++ {
		datagram = append(datagram, "foo.bar.baz.qux:1|c|@0.5|#shard:1,env:prod\n"...)
	}

	b.SetBytes(int64(len(datagram)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		count := 0

		sc := NewLineScanner(datagram)
		for sc.Scan() {
			pdu, err := Parse(sc.Line())
			if err != nil {
				b.Fatal(err)
			}

			benchPDU = pdu
			count++
		}

		if count != 25 {
			b.Fatalf("parsed %d of 25 lines", count)
		}
	}
}

func BenchmarkTagScanner(b *testing.B) {
	pdu, err := Parse(benchLine)
	if err != nil {
		b.Fatal(err)
	}

	tags := pdu.Tags()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		count := 0

		sc := NewTagScanner(tags)
		for sc.Scan() {
			name, _ := SplitTag(sc.Tag())
			if len(name) == 0 {
				b.Fatal("empty tag name")
			}
			count++
		}

		if count != 4 {
			b.Fatalf("scanned %d of 4 tags", count)
		}
	}
}
