package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/argsv"
	"github.com/dmitrymomot/argsv/pkg/logger"
	"github.com/dmitrymomot/argsv/pkg/patternfile"
)

// errRejected signals a validation failure that has already been reported.
var errRejected = errors.New("arguments rejected")

func newCheckCmd(a *app) *cobra.Command {
	var kv []string
	cmd := &cobra.Command{
		Use:   "check [positional...]",
		Short: "Validate arguments against a pattern file",
		Long: `Validate arguments against a pattern file.

Examples:
  # Positional arguments
  argsv check --pattern signup.yaml jane@example.com 30

  # Keyword arguments
  argsv check --pattern signup.yaml --arg email=jane@example.com --arg age=30

  # Settings from a .env file
  argsv check --env-file .env.local jane@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), a.log, a.pattern, args, kv)
		},
	}
	cmd.Flags().StringArrayVar(&kv, "arg", nil, "keyword argument as key=value (repeatable)")
	return cmd
}

func runCheck(out io.Writer, log *slog.Logger, path string, positional, kv []string) error {
	if path == "" {
		return errors.New("no pattern file: use --pattern or ARGSV_PATTERN")
	}
	f, err := patternfile.Load(path)
	if err != nil {
		return err
	}
	sig, err := f.Signature()
	if err != nil {
		return err
	}
	pattern, err := f.Pattern()
	if err != nil {
		return err
	}

	args := make([]any, len(positional))
	for i, a := range positional {
		args[i] = a
	}
	kwargs, err := parseKeywords(kv)
	if err != nil {
		return err
	}

	err = argsv.Validate(sig, pattern, args, kwargs, argsv.WithLogger(log))
	if ve := argsv.ExtractValidationError(err); ve != nil {
		fmt.Fprintln(out, ve.Error())
		return errRejected
	}
	if err != nil {
		return err
	}

	log.Debug("arguments accepted", logger.Pattern(path), logger.Callable(sig.Name()))
	fmt.Fprintln(out, "ok")
	return nil
}

func parseKeywords(kv []string) (map[string]any, error) {
	kwargs := make(map[string]any, len(kv))
	for _, pair := range kv {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --arg %q: expected key=value", pair)
		}
		kwargs[key] = value
	}
	return kwargs, nil
}
