// Package strength scores passwords with a point heuristic and estimates entropy.
package strength

import (
	"math"
	"unicode/utf8"

	"github.com/verte-zerg/tuipass/internal/model"
)

var lengthThresholds = []int{8, 12, 16, 20}

// Per-class alphabet sizes used for the entropy estimate.
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 8
)

type classes struct {
	lower  bool
	upper  bool
	digit  bool
	symbol bool
}

func (c classes) count() int {
	n := 0
	for _, seen := range []bool{c.lower, c.upper, c.digit, c.symbol} {
		if seen {
			n++
		}
	}
	return n
}

func classify(password string) classes {
	var c classes
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}
	return c
}

// Score classifies a password. It never fails; the empty string is Weak with 0 bits.
func Score(password string) model.StrengthResult {
	length := utf8.RuneCountInString(password)
	seen := classify(password)

	points := 0
	for _, threshold := range lengthThresholds {
		if length >= threshold {
			points++
		}
	}
	points += seen.count()
	if length > 0 && float64(distinctRunes(password))/float64(length) < 0.5 {
		points--
	}

	result := tierFor(points)
	result.Points = points
	result.EntropyBits = Entropy(password)
	return result
}

// Entropy estimates bits from the character classes observed in the password.
func Entropy(password string) float64 {
	size := alphabetSize(classify(password))
	if size == 0 {
		return 0
	}
	bits := float64(utf8.RuneCountInString(password)) * math.Log2(float64(size))
	return math.Round(bits*10) / 10
}

func alphabetSize(c classes) int {
	size := 0
	if c.lower {
		size += lowerPool
	}
	if c.upper {
		size += upperPool
	}
	if c.digit {
		size += digitPool
	}
	if c.symbol {
		size += symbolPool
	}
	return size
}

func tierFor(points int) model.StrengthResult {
	switch {
	case points <= 3:
		return model.StrengthResult{Tier: model.Weak, Percentage: 33, CrackTime: model.Seconds}
	case points <= 6:
		return model.StrengthResult{Tier: model.Medium, Percentage: 66, CrackTime: model.Days}
	default:
		return model.StrengthResult{Tier: model.Strong, Percentage: 100, CrackTime: model.Centuries}
	}
}

func distinctRunes(password string) int {
	set := make(map[rune]struct{}, len(password))
	for _, r := range password {
		set[r] = struct{}{}
	}
	return len(set)
}
