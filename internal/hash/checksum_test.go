package hash

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty", nil, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
		})
	}
}

func TestChecksumReader(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 10000)

	sum, err := ChecksumReader(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, Checksum(data), sum)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestChecksumReader_Error(t *testing.T) {
	_, err := ChecksumReader(failingReader{})
	require.Error(t, err)
}

func TestHex(t *testing.T) {
	require.Equal(t, "4fdcca5ddb678139", Hex(0x4fdcca5ddb678139))
	require.Equal(t, "0000000000000001", Hex(1))
}
