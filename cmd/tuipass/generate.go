package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/report"
)

var (
	generateQuiet bool
	generateCopy  bool
	generateSeed  int64
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a batch of passwords with their strength",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "print passwords only, one per line")
	cmd.Flags().BoolVar(&generateCopy, "copy", false, "copy the first password to the clipboard")
	cmd.Flags().Int64Var(&generateSeed, "seed", 0, "deterministic seed (testing only, not secure)")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	rng := newRandomSource(cmd, generateSeed)
	passwords, err := generator.Batch(settings.Request(), settings.Count, rng)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}

	rows := report.Build(passwords)
	out := cmd.OutOrStdout()
	if generateQuiet {
		err = report.WritePasswords(out, rows)
	} else {
		err = report.Write(out, rows, report.ShouldUseColor(out))
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if generateCopy {
		return copyToClipboard(rows[0].Password)
	}
	return nil
}

// newRandomSource returns a seeded source when --seed was given and the
// crypto-backed source otherwise.
func newRandomSource(cmd *cobra.Command, seed int64) generator.RandomSource {
	if cmd.Flags().Changed("seed") {
		slog.Warn("using deterministic seed; output is not secret", "seed", seed)
		return generator.NewSeededSource(seed)
	}
	return generator.NewCryptoSource()
}
