package bitbuf

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_WriteBits(t *testing.T) {
	tests := []struct {
		name     string
		write    func(b *Buffer)
		want     []byte
		bitCount int
	}{
		{
			name:     "empty",
			write:    func(*Buffer) {},
			want:     []byte{},
			bitCount: 0,
		},
		{
			name: "fits into partial byte",
			write: func(b *Buffer) {
				b.WriteBits(0b101, 3)
				b.WriteBits(0b11, 2)
			},
			want:     []byte{0xB8},
			bitCount: 5,
		},
		{
			name: "exactly one byte",
			write: func(b *Buffer) {
				b.WriteBits(0b1010, 4)
				b.WriteBits(0b0101, 4)
			},
			want:     []byte{0xA5},
			bitCount: 8,
		},
		{
			name:     "split across bytes",
			write:    func(b *Buffer) { b.WriteBits(0xABC, 12) },
			want:     []byte{0xAB, 0xC0},
			bitCount: 12,
		},
		{
			name:     "24-bit big endian length",
			write:    func(b *Buffer) { b.WriteBits(1000, 24) },
			want:     []byte{0x00, 0x03, 0xE8},
			bitCount: 24,
		},
		{
			name: "length then width header",
			write: func(b *Buffer) {
				b.WriteBits(1000, 24)
				b.WriteBits(1, 3)
			},
			want:     []byte{0x00, 0x03, 0xE8, 0x20},
			bitCount: 27,
		},
		{
			name:     "value masked to width",
			write:    func(b *Buffer) { b.WriteBits(0x1F0, 4) },
			want:     []byte{0x00},
			bitCount: 4,
		},
		{
			name: "unaligned value spans three bytes",
			write: func(b *Buffer) {
				b.WriteBits(1, 1)
				b.WriteBits(0xFFFF, 16)
			},
			want:     []byte{0xFF, 0xFF, 0x80},
			bitCount: 17,
		},
		{
			name:     "full 64-bit value",
			write:    func(b *Buffer) { b.WriteBits(0x0123456789ABCDEF, 64) },
			want:     []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF},
			bitCount: 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			defer b.Release()

			tt.write(b)

			require.Equal(t, tt.want, b.Bytes())
			require.Equal(t, tt.bitCount, b.BitCount())
		})
	}
}

func TestBuffer_WriteByteMatchesWriteBits(t *testing.T) {
	for offset := range 8 {
		for _, c := range []byte{0x00, 0x01, 0x7F, 0x80, 0xA5, 0xFF} {
			viaByte := NewBuffer()
			viaBits := NewBuffer()

			if offset > 0 {
				viaByte.WriteBits(0b1011011, offset)
				viaBits.WriteBits(0b1011011, offset)
			}
			require.NoError(t, viaByte.WriteByte(c))
			viaBits.WriteBits(uint64(c), 8)

			require.Equal(t, viaBits.Bytes(), viaByte.Bytes(), "offset=%d byte=%#x", offset, c)
			require.Equal(t, viaBits.BitCount(), viaByte.BitCount())

			viaByte.Release()
			viaBits.Release()
		}
	}
}

func TestBuffer_Write(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	b.WriteBits(1, 1)
	n, err := b.Write([]byte{0xDE, 0xAD})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 17, b.BitCount())

	require.Equal(t, uint64(1), b.ReadBits(1))
	require.Equal(t, []byte{0xDE, 0xAD}, b.ReadBytes(2))
	require.False(t, b.CanRead())
}

func TestBuffer_ReadBits(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	b.WriteBits(1000, 24)
	b.WriteBits(5, 3)
	require.NoError(t, b.WriteByte('A'))

	require.True(t, b.CanRead())
	require.Equal(t, uint64(1000), b.ReadBits(24))
	require.Equal(t, uint64(5), b.ReadBits(3))
	require.Equal(t, uint64('A'), b.ReadBits(8))
	require.False(t, b.CanRead())
	require.Equal(t, 0, b.Remaining())
}

func TestBuffer_ReadBitsPastEnd(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	b.WriteBits(0b10111, 5)

	// the missing three bits read as zero and the cursor stops at the end
	require.Equal(t, uint64(0b10111000), b.ReadBits(8))
	require.False(t, b.CanRead())
	require.Equal(t, 0, b.Remaining())

	require.Equal(t, uint64(0), b.ReadBits(4))
	require.Equal(t, 0, b.Remaining())
}

func TestBuffer_ReadBitsChecked(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	b.WriteBits(0b10111, 5)

	_, ok := b.ReadBitsChecked(8)
	require.False(t, ok)
	require.Equal(t, 5, b.Remaining(), "failed read must not move the cursor")

	v, ok := b.ReadBitsChecked(5)
	require.True(t, ok)
	require.Equal(t, uint64(0b10111), v)

	_, ok = b.ReadBitsChecked(1)
	require.False(t, ok)
}

func TestBuffer_ReaderIndependentOfWriter(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	b.WriteBits(0b110, 3)
	require.Equal(t, uint64(0b11), b.ReadBits(2))

	b.WriteBits(0b01, 2)
	require.Equal(t, uint64(0b001), b.ReadBits(3))
	require.False(t, b.CanRead())
}

func TestBuffer_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	type field struct {
		value uint64
		width int
	}

	fields := make([]field, 2000)
	b := NewBuffer()
	defer b.Release()

	total := 0
	for i := range fields {
		width := rng.IntN(MaxWidth) + 1
		value := rng.Uint64()
		if width < MaxWidth {
			value &= 1<<width - 1
		}
		fields[i] = field{value: value, width: width}
		b.WriteBits(value, width)
		total += width
	}
	require.Equal(t, total, b.BitCount())

	r := NewBufferFrom(b.Bytes())
	defer r.Release()

	for i, f := range fields {
		require.Equal(t, f.value, r.ReadBits(f.width), "field %d width %d", i, f.width)
	}
	require.Less(t, r.Remaining(), 8, "only padding bits may remain")
}

func TestNewBufferFrom(t *testing.T) {
	b := NewBufferFrom([]byte{0x12, 0x34})
	defer b.Release()

	require.Equal(t, 16, b.BitCount())
	require.True(t, b.CanRead())
	require.Equal(t, uint64(0x1), b.ReadBits(4))
	require.Equal(t, uint64(0x234), b.ReadBits(12))
	require.False(t, b.CanRead())
}

func TestNewBufferSize(t *testing.T) {
	b := NewBufferSize(35)
	defer b.Release()

	require.Equal(t, 0, b.BitCount())

	b.WriteBits(1000, 24)
	b.WriteBits(3, 3)
	_ = b.WriteByte('A')
	require.Equal(t, 35, b.BitCount())
	require.Equal(t, []byte{0x00, 0x03, 0xE8, 0x68, 0x20}, b.Bytes())
}

func TestBuffer_BytesIsCopy(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	b.WriteBits(0xAB, 8)
	b.WriteBits(0x3, 2)

	out := b.Bytes()
	out[0] = 0
	out[1] = 0

	require.Equal(t, []byte{0xAB, 0xC0}, b.Bytes())
}

func TestBuffer_Reset(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	b.WriteBits(0xABC, 12)
	_ = b.ReadBits(4)
	b.Reset()

	require.Equal(t, 0, b.BitCount())
	require.Equal(t, 0, b.Remaining())
	require.Empty(t, b.Bytes())

	b.WriteBits(0b1, 1)
	require.Equal(t, []byte{0x80}, b.Bytes())
}

func TestBuffer_InvalidWidthPanics(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	require.Panics(t, func() { b.WriteBits(1, 0) })
	require.Panics(t, func() { b.WriteBits(1, MaxWidth+1) })
	require.Panics(t, func() { b.ReadBits(0) })
	require.Panics(t, func() { b.ReadBitsChecked(-1) })
}

func TestBuffer_BinaryString(t *testing.T) {
	b := NewBuffer()
	defer b.Release()

	require.Equal(t, "", b.BinaryString())

	b.WriteBits(0xA5, 8)
	b.WriteBits(0b101, 3)

	require.Equal(t, "10100101101xxxxx", b.BinaryString())
}

func TestBuffer_HexString(t *testing.T) {
	tests := []struct {
		name  string
		write func(b *Buffer)
		want  string
	}{
		{"aligned", func(b *Buffer) { b.WriteBits(0xBEEF, 16) }, "BEEF"},
		{"one nibble pending", func(b *Buffer) { b.WriteBits(0xABC, 12) }, "ABC"},
		{"three bits pending", func(b *Buffer) { b.WriteBits(0b111, 3) }, "E"},
		{"five bits pending", func(b *Buffer) { b.WriteBits(0b10111, 5) }, "B8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			defer b.Release()

			tt.write(b)
			require.Equal(t, tt.want, b.HexString())
		})
	}
}
