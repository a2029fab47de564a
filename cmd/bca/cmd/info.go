package cmd

import (
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arloliu/bca/dict"
	"github.com/arloliu/bca/internal/hash"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Print the header and symbol table of a compressed file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runInfo,
	}
}

func (a *app) runInfo(cmd *cobra.Command, args []string) error {
	input := args[0]
	data, err := readInput(input)
	if err != nil {
		return err
	}

	h, err := dict.ReadHeader(data)
	if err != nil {
		return fmt.Errorf("couldn't read header: %w", err)
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("input file from path %q couldn't be opened: %w", input, err)
	}
	defer f.Close()

	sum, err := hash.ChecksumReader(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", input)
	fmt.Fprintf(out, "Size:        %s (%d bytes)\n", bytefmt.ByteSize(uint64(len(data))), len(data))
	fmt.Fprintf(out, "Length:      %s (%d bytes)\n", bytefmt.ByteSize(uint64(h.Length)), h.Length)
	fmt.Fprintf(out, "Width:       %d bits\n", h.Width)
	fmt.Fprintf(out, "Header:      %d bits\n", h.Bits())
	fmt.Fprintf(out, "Checksum:    %s\n", hash.Hex(sum))
	fmt.Fprintf(out, "Table:       %d entries\n", len(h.Table))

	rows := make([][]string, 0, len(h.Table))
	for rank, value := range h.Table {
		rows = append(rows, []string{
			strconv.Itoa(rank + 1),
			fmt.Sprintf("0x%02X", value),
			strconv.QuoteRune(rune(value)),
		})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"code", "byte", "char"})
	table.SetBorder(true)
	table.AppendBulk(rows)
	table.Render()

	a.logger.Debug("header read")

	return nil
}
