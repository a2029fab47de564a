package compress

// ZstdCompressor provides Zstandard compression, used as the high-ratio baseline
// bca is compared against.
//
// The implementation is selected at build time:
//   - default: pure Go github.com/klauspost/compress/zstd with pooled encoders and decoders
//   - `-tags gozstd` with cgo enabled: github.com/valyala/gozstd
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
