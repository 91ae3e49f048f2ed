package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/argsv/pkg/patternfile"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the signature and rules declared by a pattern file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.OutOrStdout(), a.pattern)
		},
	}
}

func runInspect(out io.Writer, path string) error {
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
	if _, err := pattern.MatchSignature(sig); err != nil {
		return err
	}

	fmt.Fprintln(out, sig)
	for _, p := range sig.Params() {
		line := fmt.Sprintf("  %s (%s)", p.Name, p.Kind)
		if p.HasDefault {
			line += fmt.Sprintf(" default=%v", p.Default)
		}
		fmt.Fprintln(out, line)
	}
	for _, name := range slices.Sorted(maps.Keys(f.Rules)) {
		fmt.Fprintf(out, "  rule %s: %s\n", name, f.Rules[name])
	}
	return nil
}
