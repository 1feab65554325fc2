// Package report renders generated passwords as plain-text tables.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/strength"
)

// Row pairs a password with its strength.
type Row struct {
	Password string
	Result   model.StrengthResult
}

// Summary aggregates a batch.
type Summary struct {
	Count       int
	ByTier      map[model.Tier]int
	MeanEntropy float64
}

// TierColor returns the display colour of a tier.
func TierColor(tier model.Tier) lipgloss.Color {
	switch tier {
	case model.Strong:
		return lipgloss.Color("#4ECDC4")
	case model.Medium:
		return lipgloss.Color("#FFDE59")
	default:
		return lipgloss.Color("#FF6B6B")
	}
}

// Build scores every password.
func Build(passwords []string) []Row {
	rows := make([]Row, len(passwords))
	for i, pw := range passwords {
		rows[i] = Row{Password: pw, Result: strength.Score(pw)}
	}
	return rows
}

// Summarize counts tiers and averages entropy.
func Summarize(rows []Row) Summary {
	s := Summary{Count: len(rows), ByTier: map[model.Tier]int{}}
	if len(rows) == 0 {
		return s
	}
	total := 0.0
	for _, r := range rows {
		s.ByTier[r.Result.Tier]++
		total += r.Result.EntropyBits
	}
	s.MeanEntropy = total / float64(len(rows))
	return s
}

const tierCol = 2

// Write renders rows as a table followed by a summary line.
func Write(w io.Writer, rows []Row, color bool) error {
	headers := []string{"#", "Password", "Strength", "Entropy", "Crack time"}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.Itoa(i + 1),
			r.Password,
			string(r.Result.Tier),
			fmt.Sprintf("%.1f bits", r.Result.EntropyBits),
			string(r.Result.CrackTime),
		}
	}

	var style cellStyler
	if color {
		style = func(row, col int, padded string) string {
			if row < 0 {
				return lipgloss.NewStyle().Bold(true).Render(padded)
			}
			if col != tierCol {
				return padded
			}
			return lipgloss.NewStyle().Foreground(TierColor(rows[row].Result.Tier)).Render(padded)
		}
	}

	lines := formatTable(headers, cells, map[int]bool{0: true, 3: true}, style)
	lines = append(lines, "", formatSummary(Summarize(rows)))
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// WritePasswords prints one password per line.
func WritePasswords(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Password); err != nil {
			return err
		}
	}
	return nil
}

func formatSummary(s Summary) string {
	return fmt.Sprintf("%d generated: %d strong, %d medium, %d weak, mean entropy %.1f bits",
		s.Count, s.ByTier[model.Strong], s.ByTier[model.Medium], s.ByTier[model.Weak], s.MeanEntropy)
}

// ShouldUseColor reports whether w is a terminal and NO_COLOR is unset.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
