// Command bigcalc evaluates reverse-Polish integer expressions with
// arbitrary precision.
//
// Usage:
//
//	bigcalc eval 2 100 '<<' 1 -
//	printf '1 2 +\n7 -3 %%\n' | bigcalc eval - --jobs 4
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
		Long:  `bigcalc evaluates reverse-Polish expressions over unbounded signed integers`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("color", "auto", "colorize errors (auto|on|off)")
	rootCmd.AddCommand(newEvalCmd())
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		os.Exit(1)
	}
}
