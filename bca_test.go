package bca

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bca/dict"
	"github.com/arloliu/bca/format"
)

// TestCompressDecompress verifies the top-level wrappers round trip
func TestCompressDecompress(t *testing.T) {
	inputs := map[string][]byte{
		"empty":  nil,
		"single": {0x7F},
		"text":   []byte(strings.Repeat("hello, bca! ", 64)),
		"binary": bytes.Repeat([]byte{0x00, 0xFF, 0x10, 0x00, 0x00}, 300),
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			encoded, err := Compress(data)
			require.NoError(t, err)
			require.Len(t, encoded, CompressedSize(data))

			decoded, err := Decompress(encoded)
			require.NoError(t, err)
			require.Equal(t, len(data), len(decoded))
			require.True(t, bytes.Equal(data, decoded))
		})
	}
}

// TestCompress_Options verifies encoder options pass through
func TestCompress_Options(t *testing.T) {
	data := []byte(strings.Repeat("abcdefgh", 32))

	encoded, err := Compress(data, dict.WithWidth(2))
	require.NoError(t, err)

	h, err := Inspect(encoded)
	require.NoError(t, err)
	require.Equal(t, 2, h.Width)
	require.Equal(t, len(data), h.Length)
	require.Equal(t, []byte("abc"), h.Table)

	_, err = Compress(data, dict.WithMaxWidth(0))
	require.ErrorIs(t, err, dict.ErrInvalidWidth)
}

// TestDecompress_Corrupt verifies corrupt streams surface typed errors
func TestDecompress_Corrupt(t *testing.T) {
	_, err := Decompress([]byte{0x00, 0x00})
	require.ErrorIs(t, err, dict.ErrTruncatedHeader)

	var decErr *dict.DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, dict.TruncatedHeader, decErr.Kind)
}

// TestChecksum verifies the digest is stable
func TestChecksum(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), Checksum(nil))
	require.Equal(t, Checksum([]byte("test")), Checksum([]byte("test")))
	require.NotEqual(t, Checksum([]byte("test")), Checksum([]byte("tess")))
}

// TestNewCodec verifies every algorithm is available through the facade
func TestNewCodec(t *testing.T) {
	data := []byte(strings.Repeat("codec ", 100))

	for _, cType := range format.AllCompressionTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := NewCodec(cType)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}

	_, err := NewCodec(format.CompressionType(0))
	require.Error(t, err)
}
