package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// ErrOutputExists is returned when the output file exists and the overwrite policy is never.
	ErrOutputExists = errors.New("output file already exists")

	// ErrNoInput is returned when a prompt needs an answer but standard input is exhausted.
	ErrNoInput = errors.New("no answer on standard input")
)

// overwritePolicy decides what happens when an output file already exists.
type overwritePolicy string

const (
	overwriteAsk    overwritePolicy = "ask"
	overwriteAlways overwritePolicy = "always"
	overwriteNever  overwritePolicy = "never"
)

func parseOverwritePolicy(s string) (overwritePolicy, error) {
	switch p := overwritePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case overwriteAsk, overwriteAlways, overwriteNever:
		return p, nil
	default:
		return "", fmt.Errorf("invalid overwrite policy %q, must be one of ask, always, never", s)
	}
}

// prompter asks questions on the command's output and reads answers line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s\n\t> ", question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// askPath asks for a path until a non-empty answer is given.
func (p *prompter) askPath(question string) (string, error) {
	for {
		path, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if path != "" {
			return path, nil
		}
		question = "Invalid output path, enter it again:"
	}
}

// resolveOutput applies the overwrite policy to path and returns the path to write.
// With the ask policy the user either confirms the overwrite or supplies another
// path, which is checked again.
func resolveOutput(p *prompter, policy overwritePolicy, path string) (string, error) {
	for {
		exists, err := fileExists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			return path, nil
		}

		switch policy {
		case overwriteAlways:
			return path, nil
		case overwriteNever:
			return "", fmt.Errorf("%w: %s", ErrOutputExists, path)
		}

		answer, err := p.ask(fmt.Sprintf("Output path \"%s\" already exists. Do you want to overwrite it? (y/n)", path))
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y") {
			return path, nil
		}

		path, err = p.askPath("Enter new output path:")
		if err != nil {
			return "", err
		}
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("couldn't stat output path %q: %w", path, err)
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input file from path %q couldn't be opened: %w", path, err)
	}

	return data, nil
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write output file %q: %w", path, err)
	}

	return nil
}

func (a *app) overwritePolicy() (overwritePolicy, error) {
	return parseOverwritePolicy(a.v.GetString(keyOverwrite))
}
