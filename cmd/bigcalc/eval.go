package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	bigint "github.com/sw1tcherrr/big-integer"
	"github.com/sw1tcherrr/big-integer/internal/rpn"
)

type evalOptions struct {
	jobs int
	dump bool
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func newEvalCmd() *cobra.Command {
	var opts evalOptions
	cmd := &cobra.Command{
		Use:   "eval (tokens... | -)",
		Short: "Evaluate a reverse-Polish expression",
		Long: `Evaluate a reverse-Polish expression given as arguments, or with a
single "-" argument, one expression per line read from stdin. Put "--" before
an expression that starts with a negative literal.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == "-" {
				return runEvalLines(cmd, opts)
			}
			v, err := rpn.Eval(args)
			if err != nil {
				return err
			}
			writeResult(cmd.OutOrStdout(), v, opts)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.jobs, "jobs", runtime.NumCPU(), "number of lines evaluated concurrently")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "also print the limbs of each result")
	return cmd
}

type lineResult struct {
	value bigint.Int
	err   error
}

func runEvalLines(cmd *cobra.Command, opts evalOptions) error {
	var lines []string
	var lineNos []int
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
			lineNos = append(lineNos, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read stdin")
	}

	results := make([]lineResult, len(lines))
	var g errgroup.Group
	g.SetLimit(max(opts.jobs, 1))
	for idx, line := range lines {
		idx, line := idx, line
		g.Go(func() error {
			v, err := rpn.EvalLine(line)
			results[idx] = lineResult{value: v, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for idx, res := range results {
		if res.err != nil {
			failed++
			printError(cmd, errors.Wrapf(res.err, "line %d", lineNos[idx]))
			continue
		}
		writeResult(cmd.OutOrStdout(), res.value, opts)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d expressions failed", failed, len(lines))
	}
	return nil
}

func writeResult(w io.Writer, v bigint.Int, opts evalOptions) {
	fmt.Fprintln(w, v)
	if opts.dump {
		fmt.Fprintf(w, "sign: %d limbs: %s", v.Sign(), dumpConfig.Sdump(v.Limbs()))
	}
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	c := color.New(color.FgRed)
	if useColor(cmd, w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintln(w, "error:", err)
}

func useColor(cmd *cobra.Command, w io.Writer) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch strings.ToLower(mode) {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
