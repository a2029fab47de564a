package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxSize bounds the original size accepted by Decompress.
const lz4MaxSize = 128 * 1024 * 1024

// ErrInvalidLZ4Frame indicates an LZ4 payload whose size prefix is missing, out of range
// or disagrees with the decoded block.
var ErrInvalidLZ4Frame = errors.New("compress: invalid lz4 payload")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression.
//
// A raw LZ4 block does not record its decompressed size, so every payload starts
// with the original size as an unsigned varint followed by the block.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a size-prefixed LZ4 block.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) > lz4MaxSize {
		return nil, fmt.Errorf("lz4 compression failed: %d bytes exceeds %d", len(data), lz4MaxSize)
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	prefix := binary.PutUvarint(dst, uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[prefix:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:prefix+n], nil
}

// Decompress restores a payload produced by Compress.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: ErrInvalidLZ4Frame for a bad size prefix or size mismatch, or the lz4 block error
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, prefix := binary.Uvarint(data)
	if prefix <= 0 || size == 0 || size > lz4MaxSize {
		return nil, fmt.Errorf("lz4 decompression failed: %w: bad size prefix", ErrInvalidLZ4Frame)
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[prefix:], out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4 decompression failed: %w: got %d bytes, want %d", ErrInvalidLZ4Frame, n, size)
	}

	return out, nil
}
