// Package wordlist loads passphrase word lists.
package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterASCIIWord keeps words made only of ASCII letters. Case is ignored
// because passphrase words are capitalized on use.
func FilterASCIIWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}
