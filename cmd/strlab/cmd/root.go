package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/strlab/foundation/core/error"
	mdwerrors "github.com/msto63/strlab/foundation/core/errors"
	mdwlog "github.com/msto63/strlab/foundation/core/log"
	"github.com/msto63/strlab/internal/menu"
	"github.com/msto63/strlab/pkg/bench"
	"github.com/msto63/strlab/pkg/core/config"
	"github.com/msto63/strlab/pkg/core/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool

	appConfig *config.Config
	logger    = mdwlog.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "strlab",
	Short: "strlab - String Manipulation Lab",
	Long: `strlab is a small lab for comparing string manipulation techniques.

Tasks:
  seq        - build "1 2 ... n" with four strategies and time them
  transform  - flip the case of palindromes, reverse every other word
  parens     - check that all parentheses are closed
  menu       - interactive console menu (default)
  tui        - interactive terminal UI`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

// Execute runs the root command. Errors not yet shown to the user are
// printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var reported *reportedError
		var exit *exitError
		if !errors.As(err, &reported) && !errors.As(err, &exit) {
			printError(rootCmd, "command failed", err)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./strlab.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console, logfmt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
}

// setup loads the configuration and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		printError(cmd, "failed to load config", err)
		return &reportedError{err: err}
	}

	if logLevel != "" {
		cfg.General.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		printError(cmd, "invalid flags", err)
		return &reportedError{err: err}
	}

	lc := logging.FromConfig(cfg)
	lc.Output = cmd.ErrOrStderr()
	appConfig = cfg
	logger = logging.NewLogger(lc)

	logger.Debug("command started", mdwlog.Fields{
		"command": cmd.CommandPath(),
		"config":  cfg.Source,
	})
	return nil
}

// newTable builds the default task table from the loaded configuration
func newTable() *menu.Table {
	return menu.DefaultTable(menu.Options{
		Harness:          bench.New(bench.WithLogger(logger)),
		Logger:           logger,
		MaxN:             appConfig.Sequence.MaxN,
		MaxSequenceChars: appConfig.Display.MaxSequenceChars,
		NormalizeNFC:     appConfig.Words.NormalizeNFC(),
	})
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", msg, err)
}

// fail logs and prints err and marks it as reported
func fail(cmd *cobra.Command, msg string, err error) error {
	logger.LogError(mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation(cmd.Name()).
		Message(msg).
		Cause(err).
		Code(mdwerror.GetCode(err)).
		Severity(mdwerror.GetSeverity(err)).
		Build())
	printError(cmd, msg, err)
	return &reportedError{err: err}
}

// reportedError wraps an error that was already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// exitError requests a specific exit status without printing anything
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if _, ok := mdwerror.As(err); ok {
		return mdwerror.GetCode(err).ExitCode()
	}
	return 1
}
