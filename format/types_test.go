package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Dict", CompressionDict.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}

func TestParseCompressionType(t *testing.T) {
	for _, c := range AllCompressionTypes {
		got, err := ParseCompressionType(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	got, err := ParseCompressionType("zstd")
	require.NoError(t, err)
	require.Equal(t, CompressionZstd, got)

	_, err = ParseCompressionType("brotli")
	require.Error(t, err)
}
