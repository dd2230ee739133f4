package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strlab/internal/menu"
	"github.com/msto63/strlab/internal/report"
	"github.com/msto63/strlab/pkg/bench"
)

var seqMaxChars int

var seqCmd = &cobra.Command{
	Use:   "seq N",
	Short: "Builds \"1 2 ... N\" with four strategies and compares their timings",
	Long: `Builds the sequence "1 2 ... N" with each of the four strategies:

  StringAppendEnd    - string, appending 1 to n using +=
  StringInsertStart  - string, inserting n to 1 using +
  BuilderAppendEnd   - strings.Builder, appending 1 to n
  BufferInsertStart  - []byte, inserting n to 1 at index 0

and prints the sequences followed by a timing table.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeq,
}

func init() {
	seqCmd.Flags().IntVar(&seqMaxChars, "max-chars", -1, "truncate printed sequences (default from config, 0 = no limit)")
	rootCmd.AddCommand(seqCmd)
}

func runSeq(cmd *cobra.Command, args []string) error {
	n, err := menu.ParseN(args[0], appConfig.Sequence.MaxN)
	if err != nil {
		return fail(cmd, "invalid sequence length", err)
	}

	rep, err := bench.New(bench.WithLogger(logger)).Measure(n)
	if err != nil {
		return fail(cmd, "benchmark failed", err)
	}

	maxChars := appConfig.Display.MaxSequenceChars
	if seqMaxChars >= 0 {
		maxChars = seqMaxChars
	}

	out := cmd.OutOrStdout()
	for _, line := range report.Benchmark(rep, maxChars) {
		fmt.Fprintln(out, line)
	}
	return nil
}
