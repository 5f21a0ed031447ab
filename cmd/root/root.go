// Package root contains the root command for the application
package root

import (
	"errors"

	"fjacquet/phonebill/internal/config"
	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/parsererror"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	LogLevel  string
	LogFormat string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "phonebill",
		Short: "A CLI tool to summarize carrier phone bill exports.",
		Long: `phonebill reads carrier CSV bill exports and writes, for every phone line,
the minutes called and SMS sent per destination number.

It also aggregates ad-hoc pipe-delimited usage exports per number.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		PersistentPreRunE: initialize,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init registers the persistent flags on the root command. It is safe to call
// more than once.
func Init() {
	flags := Cmd.PersistentFlags()
	if flags.Lookup("log-level") != nil {
		return
	}
	flags.StringVar(&SharedFlags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&SharedFlags.LogFormat, "log-format", "text", "Log format (text or json)")
}

// initialize loads .env and the layered configuration, then builds the
// shared logger from it.
func initialize(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	c, err := config.InitializeConfig(cmd.Flags())
	if err != nil {
		return err
	}
	cfg = c
	Log = config.ConfigureLogging(c)
	Log.Debug("Configuration loaded",
		logging.Field{Key: "command", Value: cmd.Name()})
	return nil
}

// GetConfig returns the loaded configuration, or the defaults when no command
// has run yet.
func GetConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// GetLogger returns the shared logger.
func GetLogger() logging.Logger {
	return Log
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *parsererror.UsageError
	if errors.As(err, &usage) {
		return usage.ExitCode
	}
	return 1
}
