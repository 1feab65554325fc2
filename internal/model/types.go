// Package model defines shared data structures.
package model

// Category names a class of characters with an associated alphabet.
type Category int

// Categories in selection order. The coverage patch walks them in this order.
const (
	Uppercase Category = iota
	Lowercase
	Digits
	Symbols
	Custom
)

// Built-in alphabets.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*"
)

// BuiltinCategories lists the categories with fixed alphabets.
var BuiltinCategories = []Category{Uppercase, Lowercase, Digits, Symbols}

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// Alphabet returns the fixed alphabet of a built-in category. Custom has none.
func (c Category) Alphabet() string {
	switch c {
	case Uppercase:
		return UppercaseChars
	case Lowercase:
		return LowercaseChars
	case Digits:
		return DigitChars
	case Symbols:
		return SymbolChars
	default:
		return ""
	}
}

// Request describes a single password generation.
type Request struct {
	Categories map[Category]bool
	Length     int
	Custom     string
}

// Selected reports whether a category is part of the request.
func (r Request) Selected(c Category) bool {
	return r.Categories[c]
}

// Tier is the qualitative strength classification.
type Tier string

// Strength tiers.
const (
	Weak   Tier = "Weak"
	Medium Tier = "Medium"
	Strong Tier = "Strong"
)

// CrackTime is the qualitative crack-time label shown next to a tier.
type CrackTime string

// Crack-time labels.
const (
	Seconds   CrackTime = "Seconds"
	Days      CrackTime = "Days"
	Centuries CrackTime = "Centuries"
)

// StrengthResult is the outcome of scoring a password.
type StrengthResult struct {
	Tier        Tier
	Percentage  int
	EntropyBits float64
	CrackTime   CrackTime
	Points      int
}

// Bounds and defaults applied by the TUI and CLI. The generator itself only
// requires a length of at least 1.
const (
	MinLength     = 1
	MaxLength     = 128
	DefaultLength = 16
	MinCount      = 1
	MaxCount      = 50
	DefaultCount  = 5
	MaxCustom     = 64
)

// DefaultSettings enables every built-in category.
func DefaultSettings() Settings {
	return Settings{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
		Count:     DefaultCount,
	}
}

// Settings holds the generator options chosen in the TUI or on the command line.
type Settings struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
	Custom    string
	Count     int
}

// Request converts settings into a generation request.
func (s Settings) Request() Request {
	return Request{
		Categories: map[Category]bool{
			Uppercase: s.Uppercase,
			Lowercase: s.Lowercase,
			Digits:    s.Digits,
			Symbols:   s.Symbols,
			Custom:    s.Custom != "",
		},
		Length: s.Length,
		Custom: s.Custom,
	}
}

// PassphraseSettings holds options for memorable passphrases.
type PassphraseSettings struct {
	Words     int
	Separator string
	Number    bool
	WordList  string
	Count     int
}
