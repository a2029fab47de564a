// Package compress provides a common Codec interface over bca's static-dictionary
// coder and the general-purpose compressors it is measured against.
//
// # Overview
//
// The package wraps every supported algorithm behind the same interface so
// callers (the bca command line tool in particular) can compress a payload with
// any of them and compare the results:
//   - None: No compression (baseline)
//   - Dict: bca static-dictionary fixed-width coding (package dict)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are looked up by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionDict)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(data)
//
// # Supported Algorithms
//
// **Dict** (format.CompressionDict)
//
// Replaces the most frequent byte values with fixed-width codes and stores the
// rest verbatim. Works best on inputs dominated by a small alphabet (DNA
// sequences, sparse bitmaps, log files with few distinct characters). It never
// grows its input by more than one bit per byte plus a 27-bit header and a
// single table byte.
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
// Uses github.com/klauspost/compress/zstd by default. Building with
// `-tags gozstd` (and cgo enabled) switches to the cgo binding
// github.com/valyala/gozstd.
//
// **S2** (format.CompressionS2)
//
// Uses github.com/klauspost/compress/s2, a faster Snappy-compatible format.
//
// **LZ4** (format.CompressionLZ4)
//
// Uses github.com/pierrec/lz4/v4 block compression. Payloads carry the original
// size as a varint prefix since raw blocks do not record it.
//
// # Measuring
//
// Measure runs a full round trip and reports sizes and timings:
//
//	stats, err := compress.Measure(format.CompressionDict, data)
//	fmt.Printf("%s: %.2f%% saved\n", stats.Algorithm, stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs in this package are stateless or use sync.Pool internally and are
// safe for concurrent use.
package compress
