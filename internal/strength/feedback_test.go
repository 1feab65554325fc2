package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedback(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{name: "empty", password: "", want: nil},
		{name: "short simple", password: "abc", want: []string{HintTooShort, HintLowVariety, HintWeakPattern}},
		{name: "repeated", password: "aaaaaaaa", want: []string{HintLowVariety, HintRepeatedChars}},
		{name: "pattern is case insensitive", password: "MyPassWord9!", want: []string{HintWeakPattern}},
		{name: "clean", password: "Xk9#mQ2$vL7!", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Feedback(tt.password))
		})
	}
}

func TestFeedbackDoesNotChangeScore(t *testing.T) {
	before := Score("abc")
	_ = Feedback("abc")
	assert.Equal(t, before, Score("abc"))
}

func TestAuditPassword(t *testing.T) {
	assert.Equal(t, Audit{}, AuditPassword("", nil))

	weak := AuditPassword("password", nil)
	assert.True(t, weak.Weak(), "expected zxcvbn to flag %+v", weak)
	assert.NotEmpty(t, weak.CrackTimeDisplay)

	strong := AuditPassword("qR7#vL2!xZ9@mK4$wP8&", nil)
	assert.False(t, strong.Weak(), "expected zxcvbn to accept %+v", strong)
	assert.Greater(t, strong.Entropy, weak.Entropy)
}

func TestAuditPasswordUserInputs(t *testing.T) {
	without := AuditPassword("qzxvbkwj1985", nil)
	with := AuditPassword("qzxvbkwj1985", []string{"qzxvbkwj"})
	assert.Less(t, with.Entropy, without.Entropy)
	assert.LessOrEqual(t, with.Score, without.Score)
	assert.True(t, with.Weak(), "expected user input to weaken %+v", with)
}
