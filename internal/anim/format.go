package anim

import (
	"fmt"
	"math"
	"strconv"
)

// Format selects how a counter renders its current value. The modes are
// evaluated as an explicit discriminant rather than sniffing config fields.
type Format int

const (
	// FormatPlain renders a fixed number of decimal places.
	FormatPlain Format = iota
	// FormatGrouped rounds to an integer and groups thousands with commas.
	FormatGrouped
	// FormatZeroDecimal rounds to an integer with no grouping.
	FormatZeroDecimal
	// FormatPace renders decimal minutes as "minutes:seconds".
	FormatPace
)

// Style is the per-stat-card formatting configuration.
type Style struct {
	Format   Format
	Decimals int // used by FormatPlain only
}

// Render formats v according to the style.
func (s Style) Render(v float64) string {
	switch s.Format {
	case FormatPace:
		return Pace(v)
	case FormatGrouped:
		return groupThousands(int64(math.Round(v)))
	case FormatZeroDecimal:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	default:
		return strconv.FormatFloat(v, 'f', s.Decimals, 64)
	}
}

// Pace formats decimal minutes as m:ss. The fractional remainder is rounded
// to whole seconds, carrying into the minute when it rounds to 60, so
// 10.999 renders as "11:00" rather than "10:60".
func Pace(v float64) string {
	if v < 0 {
		v = 0
	}
	mins := int(v)
	secs := int(math.Round((v - float64(mins)) * 60))
	if secs >= 60 {
		mins++
		secs -= 60
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
