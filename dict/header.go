package dict

import (
	"github.com/arloliu/bca/bitbuf"
	"github.com/arloliu/bca/endian"
)

// Header is the fixed-layout prefix of an encoded stream.
type Header struct {
	Length int    // byte count of the original payload
	Width  int    // bits per code
	Table  []byte // ranked symbol values, TableSize(Width) entries
}

// Bits returns the size of the header in bits, including the symbol table.
func (h Header) Bits() int {
	return HeaderBits + len(h.Table)*LiteralBits
}

// ReadHeader parses the header and symbol table of an encoded stream without
// decoding its codes.
//
// Returns a *DecodeError of kind TruncatedHeader, InvalidWidth or TruncatedTable
// when the stream is too short or the width is out of range.
func ReadHeader(input []byte) (Header, error) {
	buf := bitbuf.NewBufferFrom(input)
	defer buf.Release()

	return readHeader(buf)
}

func writeHeader(buf *bitbuf.Buffer, h Header) {
	var length [LengthBits / LiteralBits]byte
	_, _ = buf.Write(endian.AppendUint24(endian.GetWireEngine(), length[:0], uint32(h.Length)))
	buf.WriteBits(uint64(h.Width), WidthBits)
	_, _ = buf.Write(h.Table)
}

func readHeader(buf *bitbuf.Buffer) (Header, error) {
	if buf.Remaining() < HeaderBits {
		return Header{}, newDecodeError(TruncatedHeader, cursor(buf),
			"need %d bits, have %d", HeaderBits, buf.Remaining())
	}

	length := endian.Uint24(endian.GetWireEngine(), buf.ReadBytes(LengthBits/LiteralBits))
	width := int(buf.ReadBits(WidthBits))
	if !validWidth(width) {
		return Header{}, newDecodeError(InvalidWidth, cursor(buf),
			"width %d outside [%d, %d]", width, MinWidth, MaxWidth)
	}

	table := make([]byte, TableSize(width))
	for i := range table {
		v, ok := buf.ReadBitsChecked(LiteralBits)
		if !ok {
			return Header{}, newDecodeError(TruncatedTable, cursor(buf),
				"read %d of %d symbols", i, len(table))
		}
		table[i] = byte(v)
	}

	return Header{Length: int(length), Width: width, Table: table}, nil
}

// cursor returns the absolute bit offset of the read cursor.
func cursor(buf *bitbuf.Buffer) int {
	return buf.BitCount() - buf.Remaining()
}
