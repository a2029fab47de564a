package cmd

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/bca/compress"
	"github.com/arloliu/bca/format"
)

func newCompareCmd(a *app) *cobra.Command {
	var algorithms []string

	compareCmd := &cobra.Command{
		Use:   "compare <input>",
		Short: "Compare bca with general purpose compressors",
		Long: `Compress <input> in memory with every selected algorithm, decompress it
again and print the resulting sizes and timings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args, algorithms)
		},
	}

	names := make([]string, 0, len(format.AllCompressionTypes))
	for _, t := range format.AllCompressionTypes {
		names = append(names, t.String())
	}
	compareCmd.Flags().StringSliceVar(&algorithms, "algorithms", names, "algorithms to compare")

	return compareCmd
}

func (a *app) runCompare(cmd *cobra.Command, args []string, algorithms []string) error {
	types := make([]format.CompressionType, 0, len(algorithms))
	for _, name := range algorithms {
		t, err := format.ParseCompressionType(name)
		if err != nil {
			return err
		}
		types = append(types, t)
	}

	input := args[0]
	data, err := readInput(input)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(types))
	for _, t := range types {
		stats, err := compress.Measure(t, data)
		if err != nil {
			return err
		}

		a.logger.Debug("measured",
			zap.Stringer("algorithm", t),
			zap.Int64("compressed", stats.CompressedSize),
			zap.Duration("compress", time.Duration(stats.CompressionTimeNs)),
		)

		rows = append(rows, []string{
			t.String(),
			bytefmt.ByteSize(uint64(stats.CompressedSize)),
			fmt.Sprintf("%.3f", stats.CompressionRatio()),
			fmt.Sprintf("%.1f%%", stats.SpaceSavings()),
			time.Duration(stats.CompressionTimeNs).Round(time.Microsecond).String(),
			time.Duration(stats.DecompressionTimeNs).Round(time.Microsecond).String(),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", input, bytefmt.ByteSize(uint64(len(data))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"algorithm", "size", "ratio", "savings", "compress", "decompress"})
	table.SetBorder(true)
	table.AppendBulk(rows)
	table.Render()

	return nil
}
