package dict

import (
	"fmt"

	"github.com/arloliu/bca/bitbuf"
	"github.com/arloliu/bca/internal/options"
	"github.com/arloliu/bca/internal/pool"
)

// EncoderConfig holds the settings applied by EncoderOption values.
type EncoderConfig struct {
	width    int // fixed width, 0 selects the cheapest width
	maxWidth int // upper bound of the width search
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{maxWidth: MaxWidth}
}

// EncoderOption represents a functional option for configuring Encode.
// This is a type alias for the generic Option interface specialized for EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithWidth forces every code to use the given width instead of the cheapest one.
// The width must be in [MinWidth, MaxWidth].
func WithWidth(width int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !validWidth(width) {
			return fmt.Errorf("%w: %d, must be in [%d, %d]", ErrInvalidWidth, width, MinWidth, MaxWidth)
		}
		c.width = width

		return nil
	})
}

// WithMaxWidth limits the width search to [MinWidth, width].
// The width must be in [MinWidth, MaxWidth].
func WithMaxWidth(width int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !validWidth(width) {
			return fmt.Errorf("%w: max %d, must be in [%d, %d]", ErrInvalidWidth, width, MinWidth, MaxWidth)
		}
		c.maxWidth = width

		return nil
	})
}

// Encode compresses input into a self-describing bca stream.
//
// The frequency table is rebuilt for every call, the cheapest code width is
// selected (unless fixed with WithWidth), and the header, per-byte codes and
// literal section are packed into a fresh bit buffer.
//
// Parameters:
//   - input: Bytes to compress, at most MaxInputLength bytes
//   - opts: Optional encoder settings
//
// Returns:
//   - []byte: Encoded stream, owned by the caller
//   - error: ErrInputTooLarge, or ErrInvalidWidth from an invalid option
func Encode(input []byte, opts ...EncoderOption) ([]byte, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(input) > MaxInputLength {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrInputTooLarge, len(input), MaxInputLength)
	}

	freq := BuildFrequencyTable(input)

	width := cfg.width
	if width == 0 {
		width = ChooseWidth(freq, len(input), cfg.maxWidth)
	}

	covered := freq.Covered(TableSize(width))

	buf := bitbuf.NewBufferSize(Cost(width, len(input), covered))
	defer buf.Release()

	writeHeader(buf, Header{
		Length: len(input),
		Width:  width,
		Table:  freq.Symbols(width),
	})

	codes := freq.Codes(width)

	literals, release := pool.GetByteSlice(len(input) - covered)
	defer release()

	n := 0
	for _, c := range input {
		code := codes[c]
		buf.WriteBits(uint64(code), width)
		if code == LiteralCode {
			literals[n] = c
			n++
		}
	}

	_, _ = buf.Write(literals[:n])

	return buf.Bytes(), nil
}
