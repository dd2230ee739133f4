package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
	mdwerrors "github.com/msto63/strlab/foundation/core/errors"
	"github.com/msto63/strlab/foundation/utils/stringx"
	"github.com/msto63/strlab/pkg/words"
)

var (
	ignorePunctuation bool
	transformStrategy string
)

var transformCmd = &cobra.Command{
	Use:   "transform [SENTENCE...]",
	Short: "Flips the case of palindromic words and reverses all others",
	Long: `Transforms a sentence word by word. Words are separated by single
spaces; repeated spaces are kept. A palindrome gets its letter case
flipped, every other word is reversed.

Without arguments every line of stdin is transformed.

Examples:
  strlab transform "Able was I ere I saw Elba"
  strlab transform --ignore-punctuation "Madam, I'm Adam"
  echo "racecar! level" | strlab transform --strategy concat`,
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().BoolVar(&ignorePunctuation, "ignore-punctuation", false, "skip non-alphanumerics in the palindrome check (default from config)")
	transformCmd.Flags().StringVar(&transformStrategy, "strategy", "builder", "concatenation strategy: concat or builder")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	strategy, ok := words.ParseStrategy(transformStrategy)
	if !ok {
		return fail(cmd, "invalid flag", mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, "transform", "strategy", transformStrategy, "concat or builder"))
	}

	mode, _ := words.ParsePunctuationMode(appConfig.Words.DefaultMode)
	if cmd.Flags().Changed("ignore-punctuation") {
		mode = words.Strict
		if ignorePunctuation {
			mode = words.IgnorePunctuation
		}
	}

	var lines []string
	if len(args) > 0 {
		lines = []string{strings.Join(args, " ")}
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fail(cmd, "failed to read stdin", mdwerror.Wrap(err, "read stdin").WithCode(mdwerror.CodeOperationFailed))
		}
		lines = stringx.SplitLines(string(data))
	}

	out := cmd.OutOrStdout()
	for _, line := range lines {
		if appConfig.Words.NormalizeNFC() {
			line = stringx.NormalizeNFC(line)
		}
		fmt.Fprintln(out, words.TransformWith(strategy, line, mode))
	}
	return nil
}
