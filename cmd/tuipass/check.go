package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/report"
	"github.com/verte-zerg/tuipass/internal/strength"
)

var checkUserInputs []string

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password",
		Long: "Score a password given as an argument, piped on stdin, or typed at a hidden prompt.\n" +
			"Passing the password as an argument leaves it in your shell history.",
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}
	cmd.Flags().StringArrayVar(&checkUserInputs, "user-input", nil, "personal word to penalize, such as a name or email (repeatable)")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	result := strength.Score(password)
	if err := writeCheck(out, result, strength.Feedback(password), strength.AuditPassword(password, checkUserInputs), report.ShouldUseColor(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeCheck(w io.Writer, result model.StrengthResult, hints []string, audit strength.Audit, color bool) error {
	tier := string(result.Tier)
	if color {
		tier = lipgloss.NewStyle().Foreground(report.TierColor(result.Tier)).Bold(true).Render(tier)
	}
	lines := []string{
		fmt.Sprintf("Strength:   %s (%d%%)", tier, result.Percentage),
		fmt.Sprintf("Entropy:    %.1f bits", result.EntropyBits),
		fmt.Sprintf("Crack time: %s", result.CrackTime),
		fmt.Sprintf("Points:     %d", result.Points),
		fmt.Sprintf("zxcvbn:     %d/4, cracked in %s", audit.Score, zxcvbnCrackTime(audit)),
	}
	if audit.Weak() {
		lines = append(lines, "Warning:    zxcvbn rates this password as guessable")
	}
	if len(hints) > 0 {
		lines = append(lines, "Feedback:")
		for _, hint := range hints {
			lines = append(lines, "  - "+hint)
		}
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func zxcvbnCrackTime(a strength.Audit) string {
	if a.CrackTimeDisplay == "" {
		return "instant"
	}
	return a.CrackTimeDisplay
}
