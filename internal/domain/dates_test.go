package domain

import (
	"testing"
	"time"
)

func TestParseFuzzyDate(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		wantTime      time.Time
		wantPrecision DatePrecision
		wantErr       bool
	}{
		{"Full date", "2010-08-30", date(2010, time.August, 30), PrecisionFull, false},
		{"Timestamp", "2010-08-30T14:30:00Z", time.Date(2010, time.August, 30, 14, 30, 0, 0, time.UTC), PrecisionFull, false},
		{"Year and month", "2010-08", date(2010, time.August, 1), PrecisionYearMonth, false},
		{"Year only", "2010", date(2010, time.January, 1), PrecisionYear, false},
		{"Empty", "", time.Time{}, "", true},
		{"Day first format", "30-08-2010", time.Time{}, "", true},
		{"Garbage", "soon", time.Time{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFuzzyDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFuzzyDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Time.Equal(tt.wantTime) {
				t.Errorf("ParseFuzzyDate(%q) time = %v, want %v", tt.value, got.Time, tt.wantTime)
			}
			if got.Precision != tt.wantPrecision {
				t.Errorf("ParseFuzzyDate(%q) precision = %v, want %v", tt.value, got.Precision, tt.wantPrecision)
			}
		})
	}
}
