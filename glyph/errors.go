package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyph package.
var (
	// ErrNoOutline is returned when markup contains no recognizable
	// outline element. Wrap-checked via errors.Is.
	ErrNoOutline = errors.New("glyph: markup contains no outline")

	// ErrEmptyMarkup is returned when the markup text is empty.
	ErrEmptyMarkup = errors.New("glyph: empty markup")
)

// NoOutlineError reports which character's markup had no usable outline.
// It unwraps to ErrNoOutline.
type NoOutlineError struct {
	Char rune
}

func (e *NoOutlineError) Error() string {
	return fmt.Sprintf("glyph: no outline found for %q", e.Char)
}

func (e *NoOutlineError) Unwrap() error { return ErrNoOutline }

// PathError reports a malformed path data string.
type PathError struct {
	// Pos is the byte offset in the path data where parsing stopped.
	Pos int

	// Cmd is the command letter being parsed, or 0 before the first one.
	Cmd byte

	Reason string
}

func (e *PathError) Error() string {
	if e.Cmd == 0 {
		return fmt.Sprintf("glyph: bad path data at byte %d: %s", e.Pos, e.Reason)
	}
	return fmt.Sprintf("glyph: bad path data at byte %d (command %q): %s", e.Pos, e.Cmd, e.Reason)
}
