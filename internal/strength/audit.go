package strength

import (
	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Audit is a pattern-aware second opinion from zxcvbn.
type Audit struct {
	Score            int
	Entropy          float64
	CrackTimeDisplay string
}

// Weak reports whether the zxcvbn score is below 3.
func (a Audit) Weak() bool {
	return a.Score < 3
}

// AuditPassword runs zxcvbn over the password. userInputs are extra words
// (names, emails) that should count against the password.
func AuditPassword(password string, userInputs []string) Audit {
	if password == "" {
		return Audit{}
	}
	result := zxcvbn.PasswordStrength(password, userInputs)
	return Audit{
		Score:            result.Score,
		Entropy:          result.Entropy,
		CrackTimeDisplay: result.CrackTimeDisplay,
	}
}
