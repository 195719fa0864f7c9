package callsign

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when the input holds no usable callsign characters.
var ErrEmpty = errors.New("no callsign was provided")

// InvalidCharError reports a character that is not an ASCII letter or digit.
// Index is the rune position within the trimmed input.
type InvalidCharError struct {
	Input string
	Char  rune
	Index int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("callsign %q contained an invalid char %q at index %d", e.Input, e.Char, e.Index)
}

// InvalidLengthError reports a base callsign outside [MinLength, MaxLength].
type InvalidLengthError struct {
	Input string
	Len   int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("callsign %q of length %d was not within expected size", e.Input, e.Len)
}
