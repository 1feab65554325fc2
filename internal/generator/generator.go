// Package generator builds random passwords and passphrases.
package generator

import (
	"errors"
	"strings"

	"github.com/verte-zerg/tuipass/internal/model"
)

// Errors returned by Generate.
var (
	ErrNoCharacterTypes = errors.New("no character types selected")
	ErrInvalidLength    = errors.New("password length must be at least 1")
)

// RandomSource produces uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Pool returns the combined alphabet of the request in category order.
// The custom alphabet is trimmed and contributes whenever it is non-empty.
func Pool(req model.Request) []rune {
	var b strings.Builder
	for _, c := range model.BuiltinCategories {
		if req.Selected(c) {
			b.WriteString(c.Alphabet())
		}
	}
	b.WriteString(strings.TrimSpace(req.Custom))
	return []rune(b.String())
}

// Generate samples req.Length runes from the pool, then patches in one
// character for every selected built-in category that is missing.
func Generate(req model.Request, rng RandomSource) (string, error) {
	pool := Pool(req)
	if len(pool) == 0 {
		return "", ErrNoCharacterTypes
	}
	if req.Length < 1 {
		return "", ErrInvalidLength
	}

	result := make([]rune, req.Length)
	for i := range result {
		result[i] = pool[rng.Intn(len(pool))]
	}

	ensureCategories(result, req, rng)
	return string(result), nil
}

// Batch runs Generate count times. A count below 1 yields one password.
func Batch(req model.Request, count int, rng RandomSource) ([]string, error) {
	if count < 1 {
		count = 1
	}
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := Generate(req, rng)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// ensureCategories overwrites one random position per missing category.
// Later patches may land on an earlier patch; that is accepted.
func ensureCategories(password []rune, req model.Request, rng RandomSource) {
	for _, c := range model.BuiltinCategories {
		if !req.Selected(c) || containsCategory(password, c) {
			continue
		}
		alphabet := []rune(c.Alphabet())
		pos := rng.Intn(len(password))
		password[pos] = alphabet[rng.Intn(len(alphabet))]
	}
}

func containsCategory(password []rune, c model.Category) bool {
	for _, r := range password {
		if MatchesCategory(r, c) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether r passes the presence test of a built-in category.
func MatchesCategory(r rune, c model.Category) bool {
	switch c {
	case model.Uppercase:
		return r >= 'A' && r <= 'Z'
	case model.Lowercase:
		return r >= 'a' && r <= 'z'
	case model.Digits:
		return r >= '0' && r <= '9'
	case model.Symbols:
		return strings.ContainsRune(model.SymbolChars, r)
	default:
		return false
	}
}
