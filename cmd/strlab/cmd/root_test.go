package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/strlab/pkg/core/config"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and stdin, isolated from any
// config file on the machine.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvMaxN, "")

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := Execute()
	return out.String(), errOut.String(), err
}

func TestSeq(t *testing.T) {
	out, _, err := execute(t, "", "seq", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "# Generating sequence for n = 5")
	assert.Contains(t, out, "Result 1: 1 2 3 4 5")
	assert.Contains(t, out, "Result 4: 1 2 3 4 5")
	for _, label := range []string{"StringAppendEnd", "StringInsertStart", "BuilderAppendEnd", "BufferInsertStart"} {
		assert.Contains(t, out, label)
	}
}

func TestSeq_MaxChars(t *testing.T) {
	out, _, err := execute(t, "", "seq", "--max-chars", "6", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Result 1: 1 2...")
}

func TestSeq_InvalidN(t *testing.T) {
	_, errOut, err := execute(t, "", "seq", "0")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: invalid sequence length:")
	assert.Equal(t, 2, ExitCode(err))

	_, _, err = execute(t, "", "seq", "abc")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

func TestSeq_MaxNFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strlab.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sequence]\nmax_n = 10\n"), 0o644))

	_, errOut, err := execute(t, "", "--config", path, "seq", "11")
	require.Error(t, err)
	assert.Contains(t, errOut, "out of range")
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"strict", []string{"transform", "Able", "was", "I", "ere", "I", "saw", "Elba"}, "elbA saw i ERE i was ablE\n"},
		{"ignore", []string{"transform", "--ignore-punctuation", "A man a plan a canal Panama"}, "a nam A nalp A lanac amanaP\n"},
		{"concat", []string{"transform", "--strategy", "concat", "racecar!"}, "!racecar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTransform_Stdin(t *testing.T) {
	out, _, err := execute(t, "Madam, I'm Adam\r\nracecar!\n", "transform", "--ignore-punctuation")
	require.NoError(t, err)
	assert.Equal(t, "mADAM, m'I madA\nRACECAR!\n", out)
}

func TestTransform_InvalidStrategy(t *testing.T) {
	_, errOut, err := execute(t, "", "transform", "--strategy", "rope", "x")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: invalid flag:")
}

func TestParens(t *testing.T) {
	out, _, err := execute(t, "", "parens", "(a(b)c)")
	require.NoError(t, err)
	assert.Equal(t, "Input is valid\n", out)

	out, errOut, err := execute(t, "", "-v", "parens", ")(")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, out, "Input is invalid")
	assert.Contains(t, out, "position 0")
	assert.NotContains(t, errOut, "Error:")
}

func TestMenu_DefaultCommand(t *testing.T) {
	out, _, err := execute(t, "6\n(()\n0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Input is invalid")
	assert.Contains(t, out, "Exiting program...")

	out, _, err = execute(t, "2\nabc aba\n0\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Result (string, no punctuation): cba ABA")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version", "--components")
	require.NoError(t, err)
	assert.Contains(t, out, "strlab v")
	assert.Contains(t, out, "Go Version:")
	assert.Contains(t, out, "sequence")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, errOut, err := execute(t, "", "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: invalid flags:")
	assert.Equal(t, 3, ExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "", "-v", "seq", "3")
	require.NoError(t, err)
	assert.Contains(t, errOut, "command started")
	assert.Contains(t, errOut, "operation=sequence.build")
	assert.NotContains(t, out, "command started")
}

func TestUnknownCommand(t *testing.T) {
	_, errOut, err := execute(t, "", "nope")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: command failed:")
}
