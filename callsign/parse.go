// Package callsign normalizes and validates amateur-radio callsigns before
// they are sent to a lookup service.
package callsign

import (
	"strings"
)

// Plausibility bounds for the base callsign.
const (
	MinLength = 3
	MaxLength = 10
)

// Callsign is a validated callsign. Base holds only uppercase ASCII letters
// and digits. Suffix holds whatever followed the first '/', upper-cased, and
// is empty when there was none.
type Callsign struct {
	Base   string
	Suffix string
}

// HasSuffix reports whether a '/' suffix was present.
func (c Callsign) HasSuffix() bool {
	return c.Suffix != ""
}

func (c Callsign) String() string {
	if c.HasSuffix() {
		return c.Base + "/" + c.Suffix
	}
	return c.Base
}

// Parse validates input and splits it into a base callsign and an optional
// suffix, e.g. "w1aw/ae" becomes {Base: "W1AW", Suffix: "AE"}.
//
// Errors returned:
//   - ErrEmpty when nothing remains after trimming, or the base is empty
//   - *InvalidCharError for any character that is not an ASCII letter or digit
//   - *InvalidLengthError when the base is shorter than MinLength or longer than MaxLength
func Parse(input string) (Callsign, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Callsign{}, ErrEmpty
	}

	var (
		base   strings.Builder
		suffix strings.Builder
	)
	base.Grow(len(trimmed))

	inSuffix := false
	index := 0
	for _, r := range trimmed {
		if !inSuffix && r == '/' {
			inSuffix = true
			index++
			continue
		}

		up, ok := normalize(r)
		if !ok {
			return Callsign{}, &InvalidCharError{Input: input, Char: r, Index: index}
		}
		if inSuffix {
			suffix.WriteByte(up)
		} else {
			base.WriteByte(up)
		}
		index++
	}

	if base.Len() == 0 {
		return Callsign{}, ErrEmpty
	}
	if base.Len() < MinLength || base.Len() > MaxLength {
		return Callsign{}, &InvalidLengthError{Input: input, Len: base.Len()}
	}

	return Callsign{Base: base.String(), Suffix: suffix.String()}, nil
}

// normalize upper-cases an ASCII letter or passes through an ASCII digit.
func normalize(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return byte(r), true
	default:
		return 0, false
	}
}
