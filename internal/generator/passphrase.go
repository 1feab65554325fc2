package generator

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Errors returned by Passphrase.
var (
	ErrNoWords          = errors.New("word list is empty")
	ErrInvalidWordCount = errors.New("passphrase needs at least 1 word")
)

// PassphraseOptions configures a memorable passphrase.
type PassphraseOptions struct {
	Words     int
	Separator string
	Number    bool
}

// Passphrase picks opts.Words capitalized words uniformly from words and joins
// them with the separator, optionally appending a number in [10, 99].
func Passphrase(words []string, opts PassphraseOptions, rng RandomSource) (string, error) {
	if len(words) == 0 {
		return "", ErrNoWords
	}
	if opts.Words < 1 {
		return "", ErrInvalidWordCount
	}

	parts := make([]string, 0, opts.Words)
	for i := 0; i < opts.Words; i++ {
		parts = append(parts, capitalize(words[rng.Intn(len(words))]))
	}
	phrase := strings.Join(parts, opts.Separator)
	if opts.Number {
		phrase += strconv.Itoa(10 + rng.Intn(90))
	}
	return phrase, nil
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
