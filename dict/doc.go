// Package dict implements bca's static-dictionary compression.
//
// The codec assigns uniform-width codes to the most frequent byte values of the
// input and stores every other byte verbatim in a trailing literal section. It
// is not an entropy coder: every code has the same width, chosen per input to
// minimize the total encoded size.
//
// # Algorithm
//
// Encoding runs in one pass over an in-memory buffer:
//  1. Count the occurrences of every byte value (FrequencyTable). The table is
//     sorted by descending count; ties keep the order in which the values were
//     first seen.
//  2. For each code width w in 1..7, compute the encoded size in bits:
//
//     Cost(w) = 27 + (2^w-1)*8 + w*n + 8*(n - covered(w))
//
//     where n is the input length and covered(w) is the number of input bytes
//     whose value ranks among the top 2^w-1 symbols. The smallest width with
//     the minimum cost wins.
//  3. Emit the header, one w-bit code per input byte and the literal section.
//
// Code 0 is the literal sentinel: the byte at that position is read from the
// literal section. Codes 1..2^w-1 index the symbol table (code = rank + 1).
//
// # Wire Format
//
// All fields are packed most-significant-bit first with no alignment padding
// between them. Only the last byte is padded with zero bits.
//
//	+----------------+-----------+-----------------------+----------------+-------------+
//	| length (24)    | width (3) | table (8 * (2^w - 1)) | codes (w * n)  | literals    |
//	+----------------+-----------+-----------------------+----------------+-------------+
//
// The length is a big-endian 24-bit integer, so inputs are limited to
// MaxInputLength bytes.
//
// # Basic Usage
//
//	encoded, err := dict.Encode(data)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := dict.Decode(encoded)
//	if err != nil {
//	    var decErr *dict.DecodeError
//	    if errors.As(err, &decErr) {
//	        fmt.Println("corrupt stream:", decErr.Kind)
//	    }
//	    return err
//	}
//
// # Thread Safety
//
// Encode and Decode keep no state between calls and are safe for concurrent use.
package dict
