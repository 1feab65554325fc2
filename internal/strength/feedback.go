package strength

import (
	"strings"
	"unicode/utf8"
)

var weakPatterns = []string{"123", "abc", "qwer", "password", "admin", "welcome"}

// Hints returned by Feedback.
const (
	HintTooShort      = "Password too short (min 8 characters)"
	HintLowVariety    = "Add more character types"
	HintWeakPattern   = "Contains common weak pattern"
	HintRepeatedChars = "Too many repeated characters"
)

// Feedback returns advisory hints for improving a password. It does not
// affect the tier reported by Score.
func Feedback(password string) []string {
	if password == "" {
		return nil
	}
	var hints []string
	length := utf8.RuneCountInString(password)
	if length < 8 {
		hints = append(hints, HintTooShort)
	}
	if classify(password).count() < 3 {
		hints = append(hints, HintLowVariety)
	}
	lower := strings.ToLower(password)
	for _, pattern := range weakPatterns {
		if strings.Contains(lower, pattern) {
			hints = append(hints, HintWeakPattern)
			break
		}
	}
	if float64(length) > float64(distinctRunes(password))*1.5 {
		hints = append(hints, HintRepeatedChars)
	}
	return hints
}
