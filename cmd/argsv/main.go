// Package main implements the argsv CLI for checking arguments against pattern files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/argsv/pkg/config"
	"github.com/dmitrymomot/argsv/pkg/logger"
)

var version = "dev"

// cliConfig is read from the environment (and an optional .env file).
type cliConfig struct {
	LogLevel  string `env:"ARGSV_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ARGSV_LOG_FORMAT" envDefault:"text"`
	Pattern   string `env:"ARGSV_PATTERN"`
}

// app holds the state shared by all subcommands. It is filled in by the
// root command's PersistentPreRunE, after flags are parsed.
type app struct {
	envFile string
	pattern string
	log     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// setup loads the optional env file, reads the configuration and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if a.pattern == "" {
		a.pattern = cfg.Pattern
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	a.log = log
	logger.SetAsDefault(log)
	return nil
}

func newLogger(cfg cliConfig, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(out),
		logger.WithComponent("argsv"),
		logger.WithAttr(slog.String("version", version)),
	), nil
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}
	root := &cobra.Command{
		Use:   "argsv",
		Short: "Check call arguments against declarative pattern files",
		Long: `argsv binds positional and keyword arguments to the parameters declared
in a YAML pattern file and validates each bound value with the rule
declared for its parameter.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.pattern, "pattern", "", "pattern file (env ARGSV_PATTERN)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", ".env file to load before reading ARGSV_* variables")
	root.AddCommand(newCheckCmd(a), newInspectCmd(a))
	return root
}
