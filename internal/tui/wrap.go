package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
)

type styledRune struct {
	s     string
	width int
}

// styleForRune colours a password character by the class it belongs to.
// Anything outside the built-in alphabets came from the custom set.
func styleForRune(r rune) lipgloss.Style {
	switch {
	case generator.MatchesCategory(r, model.Uppercase), generator.MatchesCategory(r, model.Lowercase):
		return letterStyle
	case generator.MatchesCategory(r, model.Digits):
		return digitStyle
	case generator.MatchesCategory(r, model.Symbols):
		return symbolStyle
	default:
		return customStyle
	}
}

func buildStyledRunes(password []rune) []styledRune {
	out := make([]styledRune, 0, len(password))
	for _, r := range password {
		displayed := r
		style := styleForRune(r)
		if r == ' ' {
			displayed = '·'
			style = customStyle
		}
		out = append(out, styledRune{
			s:     style.Render(string(displayed)),
			width: runewidth.RuneWidth(displayed),
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes hard-wraps at width. Passwords have no word boundaries, so
// every character stays visible and no break point is preferred.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	start := 0
	lineWidth := 0
	for i, item := range runes {
		if lineWidth+item.width > width && i > start {
			out.WriteString(renderStyledRunes(runes[start:i]))
			out.WriteRune('\n')
			start = i
			lineWidth = 0
		}
		lineWidth += item.width
	}
	out.WriteString(renderStyledRunes(runes[start:]))
	return out.String()
}
