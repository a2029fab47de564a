package hash

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ChecksumReader computes the xxHash64 of everything read from r.
func ChecksumReader(r io.Reader) (uint64, error) {
	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return 0, fmt.Errorf("checksum: %w", err)
	}

	return d.Sum64(), nil
}

// Hex formats a checksum as a fixed-width lower-case hex string.
func Hex(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
