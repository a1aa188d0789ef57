package encode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/prometheus/prometheus/tsdb/chunkenc"
)

var (
	ErrInvalidChecksum = errors.New("checksum mismatch: data is corrupted")
	ErrTooSmall        = errors.New("payload too small to be a valid chunk")
)

// EncodePath packs one simulated price path into an XOR chunk. Step indices
// become the chunk timestamps, starting at 1.
func EncodePath(path []float64) ([]byte, error) {
	c := chunkenc.NewXORChunk()
	appender, err := c.Appender()
	if err != nil {
		return nil, fmt.Errorf("failed to get chunk appender: %w", err)
	}

	for i, v := range path {
		appender.Append(int64(i)+1, v)
	}
	return Wrap(c), nil
}

// DecodePath unpacks a path previously produced by EncodePath.
func DecodePath(data []byte) ([]float64, error) {
	c, err := Unwrap(data)
	if err != nil {
		return nil, err
	}

	var path []float64
	it := c.Iterator(nil)
	for it.Next() != chunkenc.ValNone {
		_, v := it.At()
		path = append(path, v)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("chunk iteration failed: %w", err)
	}
	return path, nil
}

// Wrap frames a chunk as [encoding byte | chunk bytes | crc32-castagnoli].
func Wrap(c chunkenc.Chunk) []byte {
	raw := c.Bytes()

	res := make([]byte, 1+len(raw)+4)

	res[0] = byte(c.Encoding())
	copy(res[1:], raw)

	table := crc32.MakeTable(crc32.Castagnoli)
	checksum := crc32.Checksum(res[:1+len(raw)], table)

	binary.BigEndian.PutUint32(res[1+len(raw):], checksum)

	return res
}

// Unwrap validates the framing and returns the contained chunk.
func Unwrap(data []byte) (chunkenc.Chunk, error) {
	if len(data) < 5 {
		return nil, ErrTooSmall
	}

	payload := data[:len(data)-4]
	want := binary.BigEndian.Uint32(data[len(data)-4:])

	table := crc32.MakeTable(crc32.Castagnoli)
	got := crc32.Checksum(payload, table)

	if got != want {
		return nil, ErrInvalidChecksum
	}

	encoding := chunkenc.Encoding(payload[0])
	if encoding != chunkenc.EncXOR {
		return nil, fmt.Errorf("unsupported encoding type: %d", encoding)
	}

	c := chunkenc.NewXORChunk()
	c.Reset(payload[1:])

	return c, nil
}
