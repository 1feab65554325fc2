package wordlist

import "testing"

func TestFilterASCIIWord(t *testing.T) {
	for _, word := range []string{"hello", "Dragon", "ICE"} {
		if !FilterASCIIWord(word) {
			t.Fatalf("expected %q to pass", word)
		}
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "r2d2"} {
		if FilterASCIIWord(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
