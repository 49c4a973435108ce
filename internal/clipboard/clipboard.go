// Package clipboard shares exported cards through the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// Write copies text to the system clipboard. On Linux this needs wl-copy,
// xclip or xsel.
func Write(text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !sysclip.Unsupported
}
