package format

import (
	"fmt"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionDict CompressionType = 0x5 // CompressionDict represents static-dictionary fixed-width coding.
)

// AllCompressionTypes lists every supported compression type in declaration order.
var AllCompressionTypes = []CompressionType{
	CompressionNone,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
	CompressionDict,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionDict:
		return "Dict"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive compression name as printed by String.
func ParseCompressionType(name string) (CompressionType, error) {
	for _, c := range AllCompressionTypes {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown compression type: %q", name)
}
