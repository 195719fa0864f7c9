package v1

import (
	"strconv"
	"strings"
	"time"
)

// HamDB dates look like 06/08/2028.
const mdyLayout = "01/02/2006"

func blankAsAbsent(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// boundedFloat parses s as a float64 within the closed interval [lo, hi].
// Blank, unparseable and out-of-range values all yield nil.
func boundedFloat(s string, lo, hi float64) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if !(v >= lo && v <= hi) {
		return nil
	}
	return &v
}

func latitude(s string) *float64 {
	return boundedFloat(s, -90, 90)
}

func longitude(s string) *float64 {
	return boundedFloat(s, -180, 180)
}

func monthDayYear(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(mdyLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
