package codec

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoder/decoder pools for efficiency.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	// SpeedDefault balances compression ratio vs speed.
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Zstd wraps another codec with zstd block compression. Good ratio at
// moderate cost; prefer it for cold or large payloads.
//
// A nil Inner selects Default.
type Zstd struct {
	Inner Codec
}

func (c Zstd) inner() Codec {
	if c.Inner != nil {
		return c.Inner
	}
	return Default
}

// Marshal encodes the value with the inner codec and compresses the result.
func (c Zstd) Marshal(v any) ([]byte, error) {
	raw, err := c.inner().Marshal(v)
	if err != nil {
		return nil, err
	}
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)
	return enc.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

// Unmarshal decompresses the data and decodes it with the inner codec.
func (c Zstd) Unmarshal(data []byte, v any) error {
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)
	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return err
	}
	return c.inner().Unmarshal(raw, v)
}

// Name returns the composed codec name, e.g. "zstd+go-json".
func (c Zstd) Name() string { return "zstd+" + c.inner().Name() }
