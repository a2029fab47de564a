package compress

import (
	"github.com/arloliu/bca/dict"
)

// DictCompressor adapts the static-dictionary coder of package dict to the Codec interface.
//
// Empty payloads map to nil in both directions, matching the other codecs. Use
// dict.Encode directly when a self-describing stream is required for empty input.
type DictCompressor struct {
	opts []dict.EncoderOption
}

var _ Codec = (*DictCompressor)(nil)

// NewDictCompressor creates a new static-dictionary compressor.
//
// Parameters:
//   - opts: Encoder options passed to dict.Encode, e.g. dict.WithMaxWidth
//
// Returns:
//   - DictCompressor: New compressor instance
func NewDictCompressor(opts ...dict.EncoderOption) DictCompressor {
	return DictCompressor{opts: opts}
}

// Compress encodes data with dict.Encode.
func (c DictCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return dict.Encode(data, c.opts...)
}

// Decompress decodes a stream produced by Compress. Corrupt input yields a *dict.DecodeError.
func (c DictCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return dict.Decode(data)
}
