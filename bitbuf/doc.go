// Package bitbuf provides an in-memory bit stream used by the bca wire format.
//
// A Buffer is an append-only bit writer and a positional bit reader over the
// same byte sequence. Values are packed most-significant-bit first, both within
// each byte and within the declared width of the value, so the top declared bit
// of a value is always the first bit written.
//
// # Writing
//
//	buf := bitbuf.NewBuffer()
//	defer buf.Release()
//
//	buf.WriteBits(1000, 24) // 24-bit length field
//	buf.WriteBits(3, 3)     // 3-bit width field
//	_ = buf.WriteByte('A')  // unaligned byte, split across two bytes
//
//	data := buf.Bytes() // 35 bits -> 5 bytes, unused low bits are zero
//
// # Reading
//
// The read cursor is independent of the write position. It starts at bit 0 and
// never passes the last committed bit:
//
//	r := bitbuf.NewBufferFrom(data)
//	length := r.ReadBits(24)
//	width := r.ReadBits(3)
//	if v, ok := r.ReadBitsChecked(8); ok {
//	    // v holds the next 8 bits
//	}
//
// ReadBits never faults. Bits requested past the end of the stream read as zero
// and the cursor is clamped at BitCount. Callers that must distinguish a short
// stream use Remaining or ReadBitsChecked.
//
// # Thread Safety
//
// A Buffer is not safe for concurrent use. Each encode or decode call owns its
// own Buffer for the duration of the call.
package bitbuf
