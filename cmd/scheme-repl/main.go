// Command scheme-repl is an interactive driver for the scheme package: it
// reads one line at a time from stdin (or a file given with --file),
// evaluates each line as one complete S-expression, and prints the result.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tizz1e/scheme-interpreter/scheme"
)

var (
	prompt   string
	noPrompt bool
	depth    int
	file     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme-repl",
		Short: "Evaluate one Scheme-like expression at a time against a persistent environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "> ", "interactive prompt")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "suppress the interactive prompt")
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum call depth; 0 means the package default")
	cmd.Flags().StringVar(&file, "file", "", "read expressions from this file instead of stdin")
	return cmd
}

func run(cmd *cobra.Command) error {
	var in *scheme.Interpreter
	if depth > 0 {
		in = scheme.NewInterpreterWithDepth(depth)
	} else {
		in = scheme.NewInterpreter()
	}

	var r io.Reader = cmd.InOrStdin()
	if file != "" {
		fd, err := os.Open(file)
		if err != nil {
			return err
		}
		defer fd.Close()
		r = fd
	}

	return loop(cmd, in, r)
}

// loop reads one line at a time and feeds each non-empty line to Evaluate
// as a complete expression, printing either the result or the error.
func loop(cmd *cobra.Command, in *scheme.Interpreter, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	for {
		if !noPrompt && file == "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		result, err := in.Evaluate(line)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintln(out, result)
	}
}
