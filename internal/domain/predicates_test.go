package domain

import (
	"testing"
	"time"
)

func boolPtr(b bool) *bool { return &b }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAgeYears(t *testing.T) {
	today := date(2023, time.August, 30)

	tests := []struct {
		name      string
		birthDate string
		wantAge   int
		wantOK    bool
	}{
		{"Thirteenth birthday today", "2010-08-30", 13, true},
		{"Day before thirteenth birthday", "2010-08-31", 12, true},
		{"Well under", "2018-01-15", 5, true},
		{"Year only resolves to January first", "2010", 13, true},
		{"Year and month", "2010-09", 12, true},
		{"Timestamp birth date", "2010-08-30T14:30:00Z", 13, true},
		{"Unparseable", "30/08/2010", 0, false},
		{"Empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := &PersonRecord{BirthDate: tt.birthDate}
			age, ok := AgeYears(person, today)
			if ok != tt.wantOK || age != tt.wantAge {
				t.Errorf("AgeYears(%q) = (%d, %v), want (%d, %v)", tt.birthDate, age, ok, tt.wantAge, tt.wantOK)
			}
		})
	}

	t.Run("Nil record", func(t *testing.T) {
		if _, ok := AgeYears(nil, today); ok {
			t.Error("AgeYears(nil) ok = true, want false")
		}
	})
}

func TestAgeYearsLeapDayBirth(t *testing.T) {
	person := &PersonRecord{BirthDate: "2012-02-29"}

	tests := []struct {
		name    string
		today   time.Time
		wantAge int
	}{
		{"Anniversary clamps to February 28 in non-leap years", date(2025, time.February, 28), 13},
		{"Day before clamped anniversary", date(2025, time.February, 27), 12},
		{"March 1 after clamped anniversary", date(2025, time.March, 1), 13},
		{"February 29 in a leap year", date(2024, time.February, 29), 12},
		{"Day before leap anniversary", date(2024, time.February, 28), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, ok := AgeYears(person, tt.today)
			if !ok || age != tt.wantAge {
				t.Errorf("AgeYears on %s = (%d, %v), want (%d, true)", tt.today.Format("2006-01-02"), age, ok, tt.wantAge)
			}
		})
	}
}

func TestIsDeceased(t *testing.T) {
	tests := []struct {
		name   string
		record *PersonRecord
		want   bool
	}{
		{"Nil record", nil, false},
		{"No markers", &PersonRecord{}, false},
		{"Boolean true", &PersonRecord{DeceasedBoolean: boolPtr(true)}, true},
		{"Boolean false", &PersonRecord{DeceasedBoolean: boolPtr(false)}, false},
		{"Boolean false overrides date", &PersonRecord{DeceasedBoolean: boolPtr(false), DeceasedDateTime: "2020-01-01"}, false},
		{"Deceased date", &PersonRecord{DeceasedDateTime: "2020-01-01"}, true},
		{"Deceased timestamp", &PersonRecord{DeceasedDateTime: "2020-01-01T10:00:00Z"}, true},
		{"Unparseable date is not deceased", &PersonRecord{DeceasedDateTime: "unknown"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDeceased(tt.record); got != tt.want {
				t.Errorf("IsDeceased() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSecurityMarking(t *testing.T) {
	tests := []struct {
		name   string
		record *PersonRecord
		want   string
	}{
		{"Nil record", nil, ""},
		{"No meta", &PersonRecord{}, ""},
		{"Empty security list", &PersonRecord{Meta: &Meta{}}, ""},
		{"Unrestricted", &PersonRecord{Meta: &Meta{Security: []Coding{{Code: "U"}}}}, "U"},
		{"Restricted", &PersonRecord{Meta: &Meta{Security: []Coding{{Code: "R"}}}}, "R"},
		{"First code wins", &PersonRecord{Meta: &Meta{Security: []Coding{{Code: "V"}, {Code: "U"}}}}, "V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecurityMarking(tt.record); got != tt.want {
				t.Errorf("SecurityMarking() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelationshipTypeCodes(t *testing.T) {
	record := &RelationshipRecord{
		Relationship: []CodeableConcept{
			{Coding: []Coding{{Code: "MTH"}, {Code: ""}}},
			{Coding: []Coding{{Code: "Guardian"}}},
			{Text: "uncoded"},
		},
	}

	codes := RelationshipTypeCodes(record)
	if len(codes) != 2 || codes[0] != "MTH" || codes[1] != "Guardian" {
		t.Errorf("RelationshipTypeCodes() = %v, want [MTH Guardian]", codes)
	}

	if got := RelationshipTypeCodes(nil); got != nil {
		t.Errorf("RelationshipTypeCodes(nil) = %v, want nil", got)
	}
}

func TestIsTemporallyActive(t *testing.T) {
	today := date(2023, time.August, 30)

	tests := []struct {
		name   string
		period *Period
		want   bool
	}{
		{"No period", nil, true},
		{"Open ended", &Period{Start: "2020-01-01"}, true},
		{"Within window", &Period{Start: "2020-01-01", End: "2030-01-01"}, true},
		{"Ends today", &Period{Start: "2020-01-01", End: "2023-08-30"}, true},
		{"Ended yesterday", &Period{Start: "2020-01-01", End: "2023-08-29"}, false},
		{"Starts today", &Period{Start: "2023-08-30"}, true},
		{"Starts tomorrow", &Period{Start: "2023-08-31"}, false},
		{"Missing start", &Period{End: "2030-01-01"}, false},
		{"Unparseable start", &Period{Start: "soon"}, false},
		{"Unparseable end is ignored", &Period{Start: "2020-01-01", End: "someday"}, true},
		{"Partial start year", &Period{Start: "2020"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &RelationshipRecord{Period: tt.period}
			if got := IsTemporallyActive(record, today); got != tt.want {
				t.Errorf("IsTemporallyActive(%+v) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}

	t.Run("Nil record", func(t *testing.T) {
		if IsTemporallyActive(nil, today) {
			t.Error("IsTemporallyActive(nil) = true, want false")
		}
	})
}

func TestRelationshipRecordIsActive(t *testing.T) {
	tests := []struct {
		name   string
		record *RelationshipRecord
		want   bool
	}{
		{"Nil record", nil, false},
		{"No flag counts active", &RelationshipRecord{}, true},
		{"Explicitly active", &RelationshipRecord{Active: boolPtr(true)}, true},
		{"Explicitly inactive", &RelationshipRecord{Active: boolPtr(false)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}
