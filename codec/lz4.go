package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Block header: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means the block is stored uncompressed.
const lz4BlockHeaderSize = 8

// LZ4 wraps another codec with LZ4 block compression. Fast with a modest
// ratio; prefer it for hot payloads.
//
// A nil Inner selects Default.
type LZ4 struct {
	Inner Codec
}

func (c LZ4) inner() Codec {
	if c.Inner != nil {
		return c.Inner
	}
	return Default
}

// Marshal encodes the value with the inner codec and compresses the result.
// Incompressible payloads are stored uncompressed rather than inflated.
func (c LZ4) Marshal(v any) ([]byte, error) {
	raw, err := c.inner().Marshal(v)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, lz4BlockHeaderSize+lz4.CompressBlockBound(len(raw)))
	var compressor lz4.Compressor
	n, err := compressor.CompressBlock(raw, buf[lz4BlockHeaderSize:])
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(raw) {
		out := make([]byte, lz4BlockHeaderSize+len(raw))
		binary.LittleEndian.PutUint32(out[0:4], uint32(len(raw)))
		binary.LittleEndian.PutUint32(out[4:8], 0)
		copy(out[lz4BlockHeaderSize:], raw)
		return out, nil
	}

	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(raw)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(n))
	return buf[:lz4BlockHeaderSize+n], nil
}

// Unmarshal decompresses the block and decodes it with the inner codec.
func (c LZ4) Unmarshal(data []byte, v any) error {
	if len(data) < lz4BlockHeaderSize {
		return fmt.Errorf("lz4 block too short: %d bytes", len(data))
	}
	uncompressedSize := binary.LittleEndian.Uint32(data[0:4])
	compressedSize := binary.LittleEndian.Uint32(data[4:8])
	body := data[lz4BlockHeaderSize:]

	var raw []byte
	if compressedSize == 0 {
		if len(body) != int(uncompressedSize) {
			return fmt.Errorf("lz4 block size mismatch: header %d, body %d", uncompressedSize, len(body))
		}
		raw = body
	} else {
		if len(body) != int(compressedSize) {
			return fmt.Errorf("lz4 block size mismatch: header %d, body %d", compressedSize, len(body))
		}
		raw = make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(body, raw)
		if err != nil {
			return err
		}
		raw = raw[:n]
	}
	return c.inner().Unmarshal(raw, v)
}

// Name returns the composed codec name, e.g. "lz4+go-json".
func (c LZ4) Name() string { return "lz4+" + c.inner().Name() }
