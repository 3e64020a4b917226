package codec

import (
	"testing"
)

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal(b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var dst []testPayload
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &dst); err != nil {
			b.Fatal(err)
		}
	}
}

func benchPayloads() []testPayload {
	payloads := make([]testPayload, 256)
	for i := range payloads {
		payloads[i] = newTestPayload()
		payloads[i].ID = uint64(i)
	}
	return payloads
}

func BenchmarkMarshal(b *testing.B) {
	v := benchPayloads()
	for _, name := range []string{"json", "go-json", "zstd+go-json", "lz4+go-json"} {
		c, _ := ByName(name)
		b.Run(name, func(b *testing.B) {
			benchmarkCodecMarshal(b, c, v)
		})
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	v := benchPayloads()
	for _, name := range []string{"json", "go-json", "zstd+go-json", "lz4+go-json"} {
		c, _ := ByName(name)
		data := MustMarshal(c, v)
		b.Run(name, func(b *testing.B) {
			benchmarkCodecUnmarshal(b, c, data)
		})
	}
}
