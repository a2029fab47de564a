package bitbuf

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/bca/internal/pool"
)

const (
	bitsPerByte = 8

	// MaxWidth is the largest width accepted by WriteBits and ReadBits.
	MaxWidth = 64
)

// Buffer is a bit-level writer and reader over a growable byte sequence.
//
// The committed bytes live in a pooled byte buffer. The trailing partial byte is
// kept in cur and filled from its most significant bit; its unused low bits are
// always zero.
type Buffer struct {
	buf     *pool.ByteBuffer // committed (full) bytes
	cur     byte             // partial byte being filled
	used    int              // occupied bits in cur, 0..7
	readPos int              // absolute bit offset of the read cursor
}

var (
	_ io.Writer     = (*Buffer)(nil)
	_ io.ByteWriter = (*Buffer)(nil)
)

// NewBuffer creates an empty Buffer backed by a pooled byte buffer.
//
// Call Release when the Buffer is no longer needed to return the backing
// storage to the pool.
func NewBuffer() *Buffer {
	return &Buffer{buf: pool.GetStreamBuffer()}
}

// NewBufferSize creates an empty Buffer with room for at least bits bits, so
// writers that know their output size up front never grow the backing storage.
func NewBufferSize(bits int) *Buffer {
	return &Buffer{buf: pool.GetStreamBufferSize((bits + bitsPerByte - 1) / bitsPerByte)}
}

// NewBufferFrom creates a Buffer whose committed bits are a copy of data.
// The read cursor starts at the first bit of data.
func NewBufferFrom(data []byte) *Buffer {
	b := &Buffer{buf: pool.GetStreamBufferSize(len(data))}
	_, _ = b.buf.Write(data)

	return b
}

// WriteBits appends the low width bits of value, most significant bit first.
//
// Bits of value above width are ignored. A value wider than the free space of
// the partial byte is split across as many bytes as needed.
//
// Panics if width is outside [1, MaxWidth].
func (b *Buffer) WriteBits(value uint64, width int) {
	checkWidth(width)

	if width < MaxWidth {
		value &= 1<<width - 1
	}

	for width > 0 {
		free := bitsPerByte - b.used
		if width < free {
			b.cur |= byte(value << (free - width))
			b.used += width

			return
		}

		// fill the partial byte with the top free bits of value and commit it
		width -= free
		b.cur |= byte(value >> width)
		_ = b.buf.WriteByte(b.cur)
		b.cur, b.used = 0, 0

		if width < MaxWidth {
			value &= 1<<width - 1
		}
	}
}

// WriteByte appends 8 bits. The output is bit-identical to WriteBits(uint64(c), 8).
// It implements io.ByteWriter and never returns an error.
func (b *Buffer) WriteByte(c byte) error {
	if b.used == 0 {
		return b.buf.WriteByte(c)
	}
	b.WriteBits(uint64(c), bitsPerByte)

	return nil
}

// Write appends every byte of p in order. It implements io.Writer and always
// returns len(p), nil.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.used == 0 {
		return b.buf.Write(p)
	}

	for _, c := range p {
		b.WriteBits(uint64(c), bitsPerByte)
	}

	return len(p), nil
}

// ReadBits reads width bits at the read cursor and returns them right-justified.
//
// The cursor advances by width, but never past BitCount. Bits requested beyond
// the end of the stream read as zero.
//
// Panics if width is outside [1, MaxWidth].
func (b *Buffer) ReadBits(width int) uint64 {
	checkWidth(width)

	var (
		value uint64
		total = b.BitCount()
	)

	for width > 0 {
		pos := b.readPos
		if pos >= total {
			// pad the missing low bits with zeros
			value <<= width
			break
		}

		bitIdx := pos % bitsPerByte
		avail := min(bitsPerByte-bitIdx, total-pos)
		n := min(width, avail)

		chunk := (b.byteAt(pos/bitsPerByte) >> (bitsPerByte - bitIdx - n)) & byte(1<<n-1)
		value = value<<n | uint64(chunk)

		b.readPos += n
		width -= n
	}

	return value
}

// ReadBitsChecked reads width bits like ReadBits, but only if at least width bits
// remain. Otherwise it returns false and leaves the cursor where it was.
func (b *Buffer) ReadBitsChecked(width int) (uint64, bool) {
	checkWidth(width)

	if b.Remaining() < width {
		return 0, false
	}

	return b.ReadBits(width), true
}

// ReadBytes reads count full bytes in stream order by repeated 8-bit reads.
func (b *Buffer) ReadBytes(count int) []byte {
	out := make([]byte, count)
	for i := range out {
		out[i] = byte(b.ReadBits(bitsPerByte))
	}

	return out
}

// CanRead reports whether the read cursor has not yet consumed every committed bit,
// including the occupied bits of the partial byte.
func (b *Buffer) CanRead() bool {
	return b.readPos < b.BitCount()
}

// Remaining returns the number of committed bits not yet consumed by the reader.
func (b *Buffer) Remaining() int {
	return b.BitCount() - b.readPos
}

// BitCount returns the total number of bits written so far.
func (b *Buffer) BitCount() int {
	return b.buf.Len()*bitsPerByte + b.used
}

// Bytes returns the committed bytes followed by the partial byte, if it holds any bits.
// The unused low bits of the last byte are zero.
//
// The returned slice is a copy owned by the caller.
func (b *Buffer) Bytes() []byte {
	n := b.buf.Len()
	if b.used > 0 {
		n++
	}

	out := make([]byte, n)
	copy(out, b.buf.Bytes())
	if b.used > 0 {
		out[n-1] = b.cur
	}

	return out
}

// Reset clears all written bits and rewinds the read cursor, keeping the allocated memory.
func (b *Buffer) Reset() {
	b.buf.Reset()
	b.cur, b.used, b.readPos = 0, 0, 0
}

// Release returns the backing storage to the pool.
// The Buffer must not be used after Release.
func (b *Buffer) Release() {
	if b.buf == nil {
		return
	}

	pool.PutStreamBuffer(b.buf)
	b.buf = nil
	b.cur, b.used, b.readPos = 0, 0, 0
}

// BinaryString renders every written bit as '0' or '1', eight per byte.
// The unused bits of the partial byte are rendered as 'x'.
func (b *Buffer) BinaryString() string {
	var sb strings.Builder
	sb.Grow((b.buf.Len() + 1) * bitsPerByte)

	for _, c := range b.buf.Bytes() {
		fmt.Fprintf(&sb, "%08b", c)
	}

	if b.used > 0 {
		for i := range bitsPerByte {
			if i >= b.used {
				sb.WriteByte('x')
				continue
			}
			sb.WriteByte('0' + (b.cur>>(bitsPerByte-1-i))&1)
		}
	}

	return sb.String()
}

// HexString renders the written bytes as upper-case hex. Only the occupied
// nibbles of the partial byte are rendered.
func (b *Buffer) HexString() string {
	var sb strings.Builder
	sb.Grow((b.buf.Len() + 1) * 2)

	for _, c := range b.buf.Bytes() {
		fmt.Fprintf(&sb, "%02X", c)
	}

	if b.used > 0 {
		fmt.Fprintf(&sb, "%X", b.cur>>4)
		if b.used > 4 {
			fmt.Fprintf(&sb, "%X", b.cur&0x0F)
		}
	}

	return sb.String()
}

func (b *Buffer) byteAt(idx int) byte {
	if idx < b.buf.Len() {
		return b.buf.B[idx]
	}

	return b.cur
}

func checkWidth(width int) {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("bitbuf: invalid width %d, must be in [1, %d]", width, MaxWidth))
	}
}
