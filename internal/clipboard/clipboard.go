// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard backend is usable.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// Write calls f(text).
func (f WriterFunc) Write(text string) error {
	return f(text)
}

// System returns a Writer backed by the OS clipboard.
func System() Writer {
	return WriterFunc(writeSystem)
}

func writeSystem(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
