package cmd

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/bca/dict"
	"github.com/arloliu/bca/internal/hash"
)

// ErrChecksumMismatch is returned when a round trip does not restore the input.
var ErrChecksumMismatch = errors.New("checksum mismatch")

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <input>",
		Short: "Check that a file survives a compression round trip",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runVerify,
	}
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	input := args[0]
	data, err := readInput(input)
	if err != nil {
		return err
	}

	var opts []dict.EncoderOption
	if width := a.v.GetInt(keyWidth); width != 0 {
		opts = append(opts, dict.WithWidth(width))
	}

	encoded, err := dict.Encode(data, opts...)
	if err != nil {
		return fmt.Errorf("couldn't compress file: %w", err)
	}

	decoded, err := dict.Decode(encoded)
	if err != nil {
		return fmt.Errorf("couldn't decompress file: %w", err)
	}

	want, got := hash.Checksum(data), hash.Checksum(decoded)
	if want != got || len(data) != len(decoded) {
		a.logger.Error("round trip failed", zap.String("want", hash.Hex(want)), zap.String("got", hash.Hex(got)))
		return fmt.Errorf("%w: %s: want %s, got %s", ErrChecksumMismatch, input, hash.Hex(want), hash.Hex(got))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK %s %s %s -> %s\n",
		hash.Hex(want), input, bytefmt.ByteSize(uint64(len(data))), bytefmt.ByteSize(uint64(len(encoded))))

	return nil
}
