// Package bca provides a byte-frequency static-dictionary compressor.
//
// Every distinct byte value of the input is ranked by frequency. The most
// frequent 2^w-1 values receive the codes 1..2^w-1 of a fixed width w, and code
// 0 marks a literal byte that is stored verbatim after the codes. The width is
// chosen per input to minimise the total encoded size.
//
// # Stream Layout
//
// All fields are packed most-significant-bit first with no padding between them:
//
//	length   24 bits   original byte count
//	width     3 bits   code width w, 1..7
//	table    (2^w-1)*8 bits, symbol values ordered by rank
//	codes    w bits per input byte
//	literals 8 bits per byte coded as 0
//
// The stream is padded with zero bits to a whole byte.
//
// # Basic Usage
//
//	encoded, err := bca.Compress(data)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := bca.Decompress(encoded)
//	if err != nil {
//	    var decErr *dict.DecodeError
//	    if errors.As(err, &decErr) {
//	        log.Printf("corrupt stream: %v", decErr.Kind)
//	    }
//	    return err
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dict and
// compress packages. Use dict directly for width control and frequency
// analysis, bitbuf for raw bit packing, and compress to compare the coder with
// general purpose algorithms.
package bca

import (
	"github.com/arloliu/bca/compress"
	"github.com/arloliu/bca/dict"
	"github.com/arloliu/bca/format"
	"github.com/arloliu/bca/internal/hash"
)

// Compress encodes data into a self-describing stream.
//
// Parameters:
//   - data: Bytes to compress, at most dict.MaxInputLength bytes
//   - opts: Optional encoder settings (dict.WithWidth, dict.WithMaxWidth)
//
// Returns:
//   - []byte: Encoded stream, at least 5 bytes even for empty input
//   - error: dict.ErrInputTooLarge or dict.ErrInvalidWidth
//
// Example:
//
//	encoded, err := bca.Compress(data, dict.WithMaxWidth(4))
func Compress(data []byte, opts ...dict.EncoderOption) ([]byte, error) {
	return dict.Encode(data, opts...)
}

// Decompress decodes a stream produced by Compress.
//
// Corrupt or truncated streams yield a *dict.DecodeError that unwraps to one
// of the dict sentinel errors.
func Decompress(data []byte) ([]byte, error) {
	return dict.Decode(data)
}

// Inspect returns the header of an encoded stream without decoding its payload.
func Inspect(data []byte) (dict.Header, error) {
	return dict.ReadHeader(data)
}

// CompressedSize returns the exact size of Compress(data) without encoding it.
func CompressedSize(data []byte) int {
	return dict.EncodedSize(data)
}

// Checksum returns the xxHash64 digest of data, as printed by the bca tool.
func Checksum(data []byte) uint64 {
	return hash.Checksum(data)
}

// NewCodec returns a compress.Codec for the given algorithm.
//
// Example:
//
//	codec, err := bca.NewCodec(format.CompressionDict)
//	compressed, err := codec.Compress(data)
func NewCodec(compressionType format.CompressionType) (compress.Codec, error) {
	return compress.CreateCodec(compressionType, "payload")
}
