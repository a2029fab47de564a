package cmd

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/bca/dict"
)

func newDecompressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input> [output]",
		Short: "Decompress a file",
		Long: `Decompress <input> and store the result in [output]. Without an output
path the configured extension is stripped from <input>, and when <input>
does not carry it the path is asked for interactively.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.runDecompress,
	}
}

func (a *app) runDecompress(cmd *cobra.Command, args []string) error {
	policy, err := a.overwritePolicy()
	if err != nil {
		return err
	}

	input := args[0]
	data, err := readInput(input)
	if err != nil {
		return err
	}

	p := newPrompter(cmd)

	var output string
	switch ext := a.v.GetString(keyExtension); {
	case len(args) > 1:
		output = args[1]
	case ext != "" && len(input) > len(ext) && strings.HasSuffix(input, ext):
		output = strings.TrimSuffix(input, ext)
	default:
		output, err = p.askPath("Enter output path:")
		if err != nil {
			return err
		}
	}

	output, err = resolveOutput(p, policy, output)
	if err != nil {
		return err
	}

	decoded, err := dict.Decode(data)
	if err != nil {
		a.logger.Debug("decode failed", zap.String("input", input), zap.Error(err))
		return fmt.Errorf("couldn't decompress file: %w", err)
	}

	if err := writeOutput(output, decoded); err != nil {
		return err
	}

	a.logger.Info("file decompressed",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("size", len(data)),
		zap.Int("decompressed", len(decoded)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File \"%s\" saved successfully.\n", output)
	fmt.Fprintf(out, "Restored %s from %s.\n",
		bytefmt.ByteSize(uint64(len(decoded))), bytefmt.ByteSize(uint64(len(data))))

	return nil
}
