package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuipass/internal/config"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/report"
	"github.com/verte-zerg/tuipass/internal/wordlist"
)

const (
	defaultPassphraseWords = 4
	minPassphraseWords     = 3
	maxPassphraseWords     = 6
	defaultSeparator       = "-"
)

var (
	passphraseWords     int
	passphraseSeparator string
	passphraseNumber    bool
	passphraseWordList  string
	passphraseCount     int
	passphraseCopy      bool
	passphraseSeed      int64
)

func newPassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Print memorable passphrases",
		Args:  cobra.NoArgs,
		RunE:  runPassphraseCmd,
	}
	cmd.Flags().IntVar(&passphraseWords, "words", defaultPassphraseWords, fmt.Sprintf("words per passphrase (%d-%d)", minPassphraseWords, maxPassphraseWords))
	cmd.Flags().StringVar(&passphraseSeparator, "separator", defaultSeparator, "separator between words")
	cmd.Flags().BoolVar(&passphraseNumber, "number", true, "append a number from 10 to 99")
	cmd.Flags().StringVar(&passphraseWordList, "wordlist", "", "word list file (one word per line)")
	cmd.Flags().IntVar(&passphraseCount, "count", 1, "passphrases to print")
	cmd.Flags().BoolVar(&passphraseCopy, "copy", false, "copy the first passphrase to the clipboard")
	cmd.Flags().Int64Var(&passphraseSeed, "seed", 0, "deterministic seed (testing only, not secure)")
	return cmd
}

func runPassphraseCmd(cmd *cobra.Command, _ []string) error {
	settings, err := resolvePassphraseSettings(cmd)
	if err != nil {
		return err
	}
	words, err := wordlist.Resolve(resolveWordListPath(settings.WordList))
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}

	rng := newRandomSource(cmd, passphraseSeed)
	opts := generator.PassphraseOptions{
		Words:     settings.Words,
		Separator: settings.Separator,
		Number:    settings.Number,
	}
	passphrases := make([]string, 0, settings.Count)
	for i := 0; i < settings.Count; i++ {
		phrase, err := generator.Passphrase(words, opts, rng)
		if err != nil {
			return fmt.Errorf("failed to generate passphrase: %w", err)
		}
		passphrases = append(passphrases, phrase)
	}

	if err := report.WritePasswords(cmd.OutOrStdout(), report.Build(passphrases)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if passphraseCopy {
		return copyToClipboard(passphrases[0])
	}
	return nil
}

func resolvePassphraseSettings(cmd *cobra.Command) (model.PassphraseSettings, error) {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return model.PassphraseSettings{}, err
	}
	applyIntConfig(cmd, "words", &passphraseWords, fileCfg.Passphrase.Words)
	applyStringConfig(cmd, "separator", &passphraseSeparator, fileCfg.Passphrase.Separator)
	applyBoolConfig(cmd, "number", &passphraseNumber, fileCfg.Passphrase.Number)
	applyStringConfig(cmd, "wordlist", &passphraseWordList, fileCfg.Passphrase.WordList)
	applyIntConfig(cmd, "count", &passphraseCount, fileCfg.Passphrase.Count)

	settings := model.PassphraseSettings{
		Words:     passphraseWords,
		Separator: passphraseSeparator,
		Number:    passphraseNumber,
		WordList:  passphraseWordList,
		Count:     passphraseCount,
	}
	if err := validatePassphraseSettings(settings); err != nil {
		return model.PassphraseSettings{}, err
	}
	return settings, nil
}

func validatePassphraseSettings(s model.PassphraseSettings) error {
	if s.Words < minPassphraseWords || s.Words > maxPassphraseWords {
		return fmt.Errorf("--words must be between %d and %d", minPassphraseWords, maxPassphraseWords)
	}
	if s.Count < model.MinCount || s.Count > model.MaxCount {
		return fmt.Errorf("--count must be between %d and %d", model.MinCount, model.MaxCount)
	}
	return nil
}

// resolveWordListPath falls back to the user word list in the config
// directory when no path was given and that file exists.
func resolveWordListPath(path string) string {
	if strings.TrimSpace(path) != "" {
		return path
	}
	fallback := config.DefaultWordListPath()
	if _, err := os.Stat(fallback); err == nil {
		slog.Debug("using word list from config directory", "path", fallback)
		return fallback
	}
	return ""
}
