package domain

import (
	"fmt"
	"time"
)

// DatePrecision records how much of a fuzzy date was actually supplied.
type DatePrecision string

const (
	PrecisionYear      DatePrecision = "YEAR"
	PrecisionYearMonth DatePrecision = "YEAR_MONTH"
	PrecisionFull      DatePrecision = "FULL"
)

// FuzzyDate is a possibly partial date. Partial dates (year or
// year-month) are normalized to the first day of their period so that
// date arithmetic is well defined; Precision records what was supplied.
type FuzzyDate struct {
	Time      time.Time
	Precision DatePrecision
}

var fuzzyLayouts = []struct {
	layout    string
	precision DatePrecision
}{
	{time.RFC3339, PrecisionFull},
	{"2006-01-02", PrecisionFull},
	{"2006-01", PrecisionYearMonth},
	{"2006", PrecisionYear},
}

// ParseFuzzyDate parses a full date, a partial date (YYYY or YYYY-MM), or
// an RFC 3339 timestamp. Partial dates resolve to the first day of the
// period.
func ParseFuzzyDate(value string) (FuzzyDate, error) {
	for _, l := range fuzzyLayouts {
		if t, err := time.Parse(l.layout, value); err == nil {
			return FuzzyDate{Time: t, Precision: l.precision}, nil
		}
	}
	return FuzzyDate{}, fmt.Errorf("unparseable date %q", value)
}

// dateOnly truncates a time to midnight so that period and age
// comparisons work at date granularity.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
