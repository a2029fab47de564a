package cmd

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/bca/dict"
)

func newCompressCmd(a *app) *cobra.Command {
	var maxWidth int

	compressCmd := &cobra.Command{
		Use:   "compress <input> [output]",
		Short: "Compress a file",
		Long: `Compress <input> and store the result in [output], or in <input> followed
by the configured extension (.bca by default) when no output is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompress(cmd, args, maxWidth)
		},
	}

	flags := compressCmd.Flags()
	flags.Int("width", 0, "fixed code width in bits (1-7), 0 selects the cheapest width")
	flags.IntVar(&maxWidth, "max-width", dict.MaxWidth, "largest code width considered when the width is selected automatically")
	a.bindFlags(flags, map[string]string{keyWidth: "width"})

	return compressCmd
}

func (a *app) runCompress(cmd *cobra.Command, args []string, maxWidth int) error {
	policy, err := a.overwritePolicy()
	if err != nil {
		return err
	}

	input := args[0]
	data, err := readInput(input)
	if err != nil {
		return err
	}

	output := input + a.v.GetString(keyExtension)
	if len(args) > 1 {
		output = args[1]
	}

	output, err = resolveOutput(newPrompter(cmd), policy, output)
	if err != nil {
		return err
	}

	opts := []dict.EncoderOption{dict.WithMaxWidth(maxWidth)}
	if width := a.v.GetInt(keyWidth); width != 0 {
		opts = append(opts, dict.WithWidth(width))
	}

	encoded, err := dict.Encode(data, opts...)
	if err != nil {
		return fmt.Errorf("couldn't compress file: %w", err)
	}

	if err := writeOutput(output, encoded); err != nil {
		return err
	}

	a.logger.Info("file compressed",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("size", len(data)),
		zap.Int("compressed", len(encoded)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File \"%s\" saved successfully.\n", output)
	if len(data) > 0 {
		fmt.Fprintf(out, "New file is %.2f%% of original file size (%s -> %s).\n",
			float64(len(encoded))/float64(len(data))*100,
			bytefmt.ByteSize(uint64(len(data))), bytefmt.ByteSize(uint64(len(encoded))))
	}

	return nil
}
