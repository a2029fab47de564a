package dict

import (
	"github.com/arloliu/bca/bitbuf"
	"github.com/arloliu/bca/internal/pool"
)

// Decode restores the original bytes from a stream produced by Encode.
//
// Decoding is all-or-nothing: on any error no partial output is returned. Bits
// after the literal section (the zero padding of the last byte, or trailing
// garbage) are ignored.
//
// Parameters:
//   - input: Encoded stream
//
// Returns:
//   - []byte: Exactly Header.Length decoded bytes
//   - error: *DecodeError of kind InvalidWidth, TruncatedHeader, TruncatedTable,
//     TruncatedCodes or TruncatedLiterals
func Decode(input []byte) ([]byte, error) {
	buf := bitbuf.NewBufferFrom(input)
	defer buf.Release()

	h, err := readHeader(buf)
	if err != nil {
		return nil, err
	}

	if need := h.Length * h.Width; buf.Remaining() < need {
		return nil, newDecodeError(TruncatedCodes, cursor(buf),
			"need %d bits for %d codes, have %d", need, h.Length, buf.Remaining())
	}

	codes, release := pool.GetByteSlice(h.Length)
	defer release()

	literalCount := 0
	for i := range codes {
		code := byte(buf.ReadBits(h.Width))
		codes[i] = code
		if isLiteral(code, len(h.Table)) {
			literalCount++
		}
	}

	if need := literalCount * LiteralBits; buf.Remaining() < need {
		return nil, newDecodeError(TruncatedLiterals, cursor(buf),
			"need %d literals, have %d bits", literalCount, buf.Remaining())
	}

	out := make([]byte, h.Length)
	for i, code := range codes {
		if isLiteral(code, len(h.Table)) {
			out[i] = byte(buf.ReadBits(LiteralBits))
			continue
		}
		out[i] = h.Table[code-1]
	}

	return out, nil
}

// isLiteral reports whether code resolves through the literal section. Codes
// beyond the table cannot be produced by Encode and are treated like the sentinel.
func isLiteral(code byte, tableSize int) bool {
	return code == LiteralCode || int(code) > tableSize
}
