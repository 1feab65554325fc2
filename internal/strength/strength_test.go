package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/verte-zerg/tuipass/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     model.StrengthResult
	}{
		{
			name:     "empty",
			password: "",
			want:     model.StrengthResult{Tier: model.Weak, Percentage: 33, EntropyBits: 0, CrackTime: model.Seconds, Points: 0},
		},
		{
			name:     "repeated lowercase",
			password: "aaaaaaaa",
			want:     model.StrengthResult{Tier: model.Weak, Percentage: 33, EntropyBits: 37.6, CrackTime: model.Seconds, Points: 1},
		},
		{
			name:     "short lowercase",
			password: "abcdefg",
			want:     model.StrengthResult{Tier: model.Weak, Percentage: 33, EntropyBits: 32.9, CrackTime: model.Seconds, Points: 1},
		},
		{
			name:     "medium lower bound",
			password: "Abcdef12",
			want:     model.StrengthResult{Tier: model.Medium, Percentage: 66, EntropyBits: 47.6, CrackTime: model.Days, Points: 4},
		},
		{
			name:     "fifteen characters all classes",
			password: "Tr0ub4dor&9XyZ!",
			want:     model.StrengthResult{Tier: model.Medium, Percentage: 66, EntropyBits: 91.9, CrackTime: model.Days, Points: 6},
		},
		{
			name:     "seventeen characters all classes",
			password: "Tr0ub4dor&9XyZ!xy",
			want:     model.StrengthResult{Tier: model.Strong, Percentage: 100, EntropyBits: 104.2, CrackTime: model.Centuries, Points: 7},
		},
		{
			name:     "nineteen characters all classes",
			password: "Tr0ub4dor&9XyZ!xyPq",
			want:     model.StrengthResult{Tier: model.Strong, Percentage: 100, EntropyBits: 116.5, CrackTime: model.Centuries, Points: 7},
		},
		{
			name:     "twenty characters all classes",
			password: "Tr0ub4dor&9XyZ!xyPqW",
			want:     model.StrengthResult{Tier: model.Strong, Percentage: 100, EntropyBits: 122.6, CrackTime: model.Centuries, Points: 8},
		},
		{
			name:     "non ascii counts as symbol",
			password: "ééé",
			want:     model.StrengthResult{Tier: model.Weak, Percentage: 33, EntropyBits: 9, CrackTime: model.Seconds, Points: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.password)
			assert.Equal(t, tt.want.Tier, got.Tier)
			assert.Equal(t, tt.want.Percentage, got.Percentage)
			assert.Equal(t, tt.want.CrackTime, got.CrackTime)
			assert.Equal(t, tt.want.Points, got.Points)
			assert.InDelta(t, tt.want.EntropyBits, got.EntropyBits, 1e-9)
		})
	}
}

func TestScoreRepetitionPenaltyBoundary(t *testing.T) {
	// Exactly half distinct is not penalised.
	require.Equal(t, 1, Score("aabb").Points)
	require.Equal(t, 1, Score("aaab").Points)
	// Below half is.
	require.Equal(t, 0, Score("aaaab").Points)
}

func TestEntropyRounding(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(""))
	assert.Equal(t, 37.6, Entropy("aaaaaaaa"))
	assert.Equal(t, 3.3, Entropy("7"))
}

func TestScoreProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.String().Draw(t, "password")

		first := Score(pw)
		second := Score(pw)
		if first != second {
			t.Fatalf("Score not pure: %+v vs %+v", first, second)
		}
		if first.EntropyBits < 0 {
			t.Fatalf("negative entropy %v", first.EntropyBits)
		}
		switch first.Tier {
		case model.Weak:
			if first.Percentage != 33 || first.CrackTime != model.Seconds || first.Points > 3 {
				t.Fatalf("inconsistent weak result %+v", first)
			}
		case model.Medium:
			if first.Percentage != 66 || first.CrackTime != model.Days || first.Points < 4 || first.Points > 6 {
				t.Fatalf("inconsistent medium result %+v", first)
			}
		case model.Strong:
			if first.Percentage != 100 || first.CrackTime != model.Centuries || first.Points < 7 {
				t.Fatalf("inconsistent strong result %+v", first)
			}
		default:
			t.Fatalf("unknown tier %q", first.Tier)
		}
	})
}
