// Package main provides the CLI entrypoint for tuipass.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuipass/internal/clipboard"
	"github.com/verte-zerg/tuipass/internal/config"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/tui"
)

const defaultLogLevel = "warn"

var (
	genLength  int
	genUpper   bool
	genLower   bool
	genDigits  bool
	genSymbols bool
	genCustom  string
	genCount   int

	logLevel string

	// clipboardWriter is swapped in tests.
	clipboardWriter = clipboard.System
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := model.DefaultSettings()
	rootCmd := &cobra.Command{
		Use:           "tuipass",
		Short:         "Password generator with a strength meter",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(cmd.ErrOrStderr(), logLevel)
		},
		RunE: runTUICmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&genLength, "length", defaults.Length, fmt.Sprintf("password length (%d-%d)", model.MinLength, model.MaxLength))
	flags.BoolVar(&genUpper, "upper", defaults.Uppercase, "include uppercase letters (A-Z)")
	flags.BoolVar(&genLower, "lower", defaults.Lowercase, "include lowercase letters (a-z)")
	flags.BoolVar(&genDigits, "digits", defaults.Digits, "include digits (0-9)")
	flags.BoolVar(&genSymbols, "symbols", defaults.Symbols, "include symbols ("+model.SymbolChars+")")
	flags.StringVar(&genCustom, "custom", defaults.Custom, "extra characters to include")
	flags.IntVar(&genCount, "count", defaults.Count, fmt.Sprintf("passwords per batch (%d-%d)", model.MinCount, model.MaxCount))
	flags.StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newPassphraseCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	m := tui.NewModel(settings, generator.NewCryptoSource(), clipboardWriter())
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveSettings merges built-in defaults, the config file and explicitly
// set flags, in increasing order of precedence.
func resolveSettings(cmd *cobra.Command) (model.Settings, error) {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return model.Settings{}, err
	}
	applyIntConfig(cmd, "length", &genLength, fileCfg.Generate.Length)
	applyBoolConfig(cmd, "upper", &genUpper, fileCfg.Generate.Uppercase)
	applyBoolConfig(cmd, "lower", &genLower, fileCfg.Generate.Lowercase)
	applyBoolConfig(cmd, "digits", &genDigits, fileCfg.Generate.Digits)
	applyBoolConfig(cmd, "symbols", &genSymbols, fileCfg.Generate.Symbols)
	applyStringConfig(cmd, "custom", &genCustom, fileCfg.Generate.Custom)
	applyIntConfig(cmd, "count", &genCount, fileCfg.Generate.Count)

	settings := model.Settings{
		Length:    genLength,
		Uppercase: genUpper,
		Lowercase: genLower,
		Digits:    genDigits,
		Symbols:   genSymbols,
		Custom:    genCustom,
		Count:     genCount,
	}
	if err := validateSettings(settings); err != nil {
		return model.Settings{}, err
	}
	slog.Debug("resolved generator settings",
		"length", settings.Length,
		"upper", settings.Uppercase,
		"lower", settings.Lowercase,
		"digits", settings.Digits,
		"symbols", settings.Symbols,
		"custom", settings.Custom != "",
		"count", settings.Count,
	)
	return settings, nil
}

func loadFileConfig() (config.FileConfig, error) {
	path := config.DefaultConfigPath()
	slog.Debug("loading config", "path", path)
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, nil
}

func validateSettings(s model.Settings) error {
	if s.Length < model.MinLength || s.Length > model.MaxLength {
		return fmt.Errorf("--length must be between %d and %d", model.MinLength, model.MaxLength)
	}
	if s.Count < model.MinCount || s.Count > model.MaxCount {
		return fmt.Errorf("--count must be between %d and %d", model.MinCount, model.MaxCount)
	}
	if utf8.RuneCountInString(s.Custom) > model.MaxCustom {
		return fmt.Errorf("--custom must be at most %d characters", model.MaxCustom)
	}
	return nil
}

func copyToClipboard(text string) error {
	if err := clipboardWriter().Write(text); err != nil {
		return err
	}
	slog.Info("copied to clipboard")
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	slog.Info("created config", "path", path)
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := model.DefaultSettings()
	return fmt.Sprintf(`# tuipass configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# length = %d            # Password length (%d-%d)
# uppercase = %t        # Include A-Z
# lowercase = %t        # Include a-z
# digits = %t           # Include 0-9
# symbols = %t          # Include %s
# custom = ""             # Extra characters
# count = %d              # Passwords per batch (%d-%d)

[passphrase]
# words = %d              # Words per passphrase (%d-%d)
# separator = %q         # Placed between words
# number = true           # Append a number from 10 to 99
# wordlist = ""           # One word per line; default %s if present
# count = 1               # Passphrases to print
`,
		defaults.Length, model.MinLength, model.MaxLength,
		defaults.Uppercase,
		defaults.Lowercase,
		defaults.Digits,
		defaults.Symbols, model.SymbolChars,
		defaults.Count, model.MinCount, model.MaxCount,
		defaultPassphraseWords, minPassphraseWords, maxPassphraseWords,
		defaultSeparator,
		config.DefaultWordListPath(),
	)
}
