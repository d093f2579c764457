// Package terminal answers questions about the process's terminal
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a board of the given size, drawn cellColumns wide per
// cell plus a frame and a HUD of hudColumns, fits the terminal.
func Fits(size, cellColumns, hudColumns int) bool {
	w, h := GetSize()
	return w >= size*cellColumns+2+hudColumns && h >= size+2
}
