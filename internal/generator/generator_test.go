package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/verte-zerg/tuipass/internal/model"
)

// scriptedSource replays fixed draws and panics when a draw is out of range
// or the script runs out.
type scriptedSource struct {
	draws []int
	next  int
}

func (s *scriptedSource) Intn(n int) int {
	if s.next >= len(s.draws) {
		panic("scripted source exhausted")
	}
	v := s.draws[s.next]
	s.next++
	if v < 0 || v >= n {
		panic("scripted draw out of range")
	}
	return v
}

func request(length int, custom string, cats ...model.Category) model.Request {
	req := model.Request{Categories: map[model.Category]bool{}, Length: length, Custom: custom}
	for _, c := range cats {
		req.Categories[c] = true
	}
	return req
}

func TestPoolOrderAndCustomTrim(t *testing.T) {
	req := request(8, "  éx ", model.Digits, model.Uppercase)
	pool := string(Pool(req))
	assert.Equal(t, model.UppercaseChars+model.DigitChars+"éx", pool)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.Request
		wantErr error
	}{
		{
			name:    "nothing selected",
			req:     request(12, ""),
			wantErr: ErrNoCharacterTypes,
		},
		{
			name:    "whitespace custom only",
			req:     request(12, " \t "),
			wantErr: ErrNoCharacterTypes,
		},
		{
			name:    "zero length",
			req:     request(0, "", model.Lowercase),
			wantErr: ErrInvalidLength,
		},
		{
			name:    "negative length",
			req:     request(-3, "abc"),
			wantErr: ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.req, NewSeededSource(1))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, result)
		})
	}
}

func TestGeneratePatchesMissingCategory(t *testing.T) {
	// Pool is A-Z then 0-9. Draws 0..3 give "ABCD", digits are missing, so
	// position 2 is overwritten with DigitChars[7].
	src := &scriptedSource{draws: []int{0, 1, 2, 3, 2, 7}}
	got, err := Generate(request(4, "", model.Uppercase, model.Digits), src)
	require.NoError(t, err)
	assert.Equal(t, "AB7D", got)
	assert.Equal(t, len(src.draws), src.next)
}

func TestGenerateLaterPatchOverwritesEarlier(t *testing.T) {
	// "ab" lacks digits and symbols. The digit patch lands on position 0 and
	// the symbol patch lands on the same position, dropping the digit.
	src := &scriptedSource{draws: []int{0, 1, 0, 5, 0, 2}}
	got, err := Generate(request(2, "", model.Lowercase, model.Digits, model.Symbols), src)
	require.NoError(t, err)
	assert.Equal(t, "#b", got)
	assert.Equal(t, len(src.draws), src.next)
}

func TestGeneratePatchSeesEarlierPatches(t *testing.T) {
	// A single slot: uppercase is present, lowercase is patched over it.
	src := &scriptedSource{draws: []int{0, 0, 0}}
	got, err := Generate(request(1, "", model.Uppercase, model.Lowercase), src)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestGenerateCustomIsNotPatched(t *testing.T) {
	src := &scriptedSource{draws: []int{0, 1, 2, 0, 1}}
	got, err := Generate(request(5, "  xyz ", model.Custom), src)
	require.NoError(t, err)
	assert.Equal(t, "xyzxy", got)
	assert.Equal(t, len(src.draws), src.next)
}

func TestGenerateLowercaseDigitsExample(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]{10}$`)
	rng := NewCryptoSource()
	for i := 0; i < 200; i++ {
		pw, err := Generate(request(10, "", model.Lowercase, model.Digits), rng)
		require.NoError(t, err)
		require.Regexp(t, pattern, pw)
		require.True(t, strings.ContainsAny(pw, model.LowercaseChars), "missing lowercase in %q", pw)
		require.True(t, strings.ContainsAny(pw, model.DigitChars), "missing digit in %q", pw)
	}
}

func TestGenerateSingleCategoryAlwaysCovered(t *testing.T) {
	for _, c := range model.BuiltinCategories {
		t.Run(c.String(), func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				length := rapid.IntRange(1, 40).Draw(t, "length")
				custom := rapid.StringOfN(rapid.RuneFrom([]rune("xyz€ ")), 0, 6, -1).Draw(t, "custom")
				seed := rapid.Int64().Draw(t, "seed")

				pw, err := Generate(request(length, custom, c), NewSeededSource(seed))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !containsCategory([]rune(pw), c) {
					t.Fatalf("password %q lacks %s", pw, c)
				}
			})
		})
	}
}

func TestGenerateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := model.Request{Categories: map[model.Category]bool{}}
		for _, c := range model.BuiltinCategories {
			req.Categories[c] = rapid.Bool().Draw(t, c.String())
		}
		req.Custom = rapid.StringOfN(rapid.RuneFrom([]rune("αβ_-. ")), 0, 5, -1).Draw(t, "custom")
		req.Length = rapid.IntRange(1, 64).Draw(t, "length")
		seed := rapid.Int64().Draw(t, "seed")

		pool := Pool(req)
		pw, err := Generate(req, NewSeededSource(seed))
		if len(pool) == 0 {
			if err != ErrNoCharacterTypes {
				t.Fatalf("expected ErrNoCharacterTypes, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		runes := []rune(pw)
		if len(runes) != req.Length {
			t.Fatalf("length = %d, want %d", len(runes), req.Length)
		}
		allowed := string(pool)
		for _, r := range runes {
			if !strings.ContainsRune(allowed, r) {
				t.Fatalf("rune %q not in pool %q", r, allowed)
			}
		}
	})
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	req := request(24, "", model.Uppercase, model.Lowercase, model.Digits, model.Symbols)
	a, err := Generate(req, NewSeededSource(42))
	require.NoError(t, err)
	b, err := Generate(req, NewSeededSource(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBatch(t *testing.T) {
	req := request(12, "", model.Lowercase, model.Digits)

	passwords, err := Batch(req, 5, NewSeededSource(7))
	require.NoError(t, err)
	require.Len(t, passwords, 5)
	for _, pw := range passwords {
		assert.Len(t, pw, 12)
	}

	passwords, err = Batch(req, 0, NewSeededSource(7))
	require.NoError(t, err)
	assert.Len(t, passwords, 1)

	_, err = Batch(request(12, ""), 3, NewSeededSource(7))
	assert.ErrorIs(t, err, ErrNoCharacterTypes)
}

func TestMatchesCategory(t *testing.T) {
	assert.True(t, MatchesCategory('Q', model.Uppercase))
	assert.False(t, MatchesCategory('q', model.Uppercase))
	assert.True(t, MatchesCategory('q', model.Lowercase))
	assert.True(t, MatchesCategory('0', model.Digits))
	assert.True(t, MatchesCategory('&', model.Symbols))
	assert.False(t, MatchesCategory('?', model.Symbols))
	assert.False(t, MatchesCategory('x', model.Custom))
}
