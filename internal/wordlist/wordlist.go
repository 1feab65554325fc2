// Package wordlist loads passphrase word lists.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Default is the built-in word bank used when no word list file is configured.
var Default = []string{
	"red", "blue", "green", "gold", "silver", "dragon", "phoenix", "tiger",
	"lion", "eagle", "wolf", "bear", "ocean", "river", "mountain", "forest",
	"sun", "moon", "star", "cloud", "wind", "fire", "ice", "earth",
	"king", "queen", "knight", "wizard", "dwarf", "elf", "giant", "angel",
}

// LoadWords reads one word per line from path, keeping lines accepted by
// keep. Blank lines and lines starting with '#' are skipped.
func LoadWords(path string, keep FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if keep != nil && !keep(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty: %s", path)
	}
	return words, nil
}

// Resolve returns the words from path, or a copy of the built-in bank when
// path is empty.
func Resolve(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return append([]string(nil), Default...), nil
	}
	return LoadWords(path, FilterASCIIWord)
}
