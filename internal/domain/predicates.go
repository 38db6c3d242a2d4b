package domain

import "time"

// AgeYears computes the person's age in whole years on the given date.
// The anniversary day itself counts: a person born exactly N years before
// today is N. Partial birth dates resolve to the first day of their
// period. The second return value is false when the record carries no
// parseable birth date.
func AgeYears(p *PersonRecord, today time.Time) (int, bool) {
	if p == nil || p.BirthDate == "" {
		return 0, false
	}
	born, err := ParseFuzzyDate(p.BirthDate)
	if err != nil {
		return 0, false
	}

	birth := dateOnly(born.Time)
	now := dateOnly(today)

	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	// AddDate rolls Feb 29 over to Mar 1 in non-leap years; the
	// anniversary clamps to Feb 28 instead.
	if anniversary.Day() != birth.Day() {
		anniversary = anniversary.AddDate(0, 0, -1)
	}
	if anniversary.After(now) {
		years--
	}
	return years, true
}

// IsDeceased reports whether the record marks the person as deceased.
// An explicit deceased flag takes precedence; otherwise a deceased date
// that parses to an actual date counts. A deceased date that is present
// but empty or unparseable does NOT mark the person deceased.
func IsDeceased(p *PersonRecord) bool {
	if p == nil {
		return false
	}
	if p.DeceasedBoolean != nil {
		return *p.DeceasedBoolean
	}
	if p.DeceasedDateTime == "" {
		return false
	}
	_, err := ParseFuzzyDate(p.DeceasedDateTime)
	return err == nil
}

// SecurityMarking returns the first security code on the record, or the
// empty string when the record carries none. Absence of a marking is not
// a restriction: callers treat it as unrestricted.
func SecurityMarking(p *PersonRecord) string {
	if p == nil || p.Meta == nil || len(p.Meta.Security) == 0 {
		return ""
	}
	return p.Meta.Security[0].Code
}

// RelationshipTypeCodes flattens all relationship codings on the record
// into a list of raw codes, skipping concepts and codings with no code.
func RelationshipTypeCodes(r *RelationshipRecord) []string {
	if r == nil {
		return nil
	}
	var codes []string
	for _, concept := range r.Relationship {
		for _, coding := range concept.Coding {
			if coding.Code != "" {
				codes = append(codes, coding.Code)
			}
		}
	}
	return codes
}

// IsTemporallyActive reports whether the relationship's validity period
// covers the given date. A missing period counts as active: the
// demographics service records open-ended relationships without one. A
// present period must have a start on or before today, and an end that
// is absent, unparseable, or on or after today.
func IsTemporallyActive(r *RelationshipRecord, today time.Time) bool {
	if r == nil {
		return false
	}
	if r.Period == nil {
		return true
	}

	now := dateOnly(today)

	start, err := ParseFuzzyDate(r.Period.Start)
	if err != nil || dateOnly(start.Time).After(now) {
		return false
	}

	if r.Period.End != "" {
		if end, err := ParseFuzzyDate(r.Period.End); err == nil && dateOnly(end.Time).Before(now) {
			return false
		}
	}
	return true
}
