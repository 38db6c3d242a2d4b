package nhsnumber

import (
	"testing"
)

func TestSanitize(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain digits", "9000000009", "9000000009"},
		{"Hyphen separated", "900-000-0009", "9000000009"},
		{"Space separated", "900 000 0009", "9000000009"},
		{"Mixed separators", "900-000 0009", "9000000009"},
		{"Empty string", "", ""},
		{"Other characters kept", "90000000x9", "90000000x9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{"Valid number", "9000000009", true},
		{"Valid with separators", "900 000-0009", true},
		{"Wrong check digit", "9000000008", false},
		{"Checksum of ten is never valid", "1000000010", false},
		{"Too short", "900000000", false},
		{"Too long", "90000000090", false},
		{"Non numeric", "90000000a9", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsValid(tt.number); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestChecksumOK(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{"Valid checksum", "9000000009", true},
		{"Invalid checksum", "9000000008", false},
		{"Computed checksum eleven maps to zero", "9100000000", true},
		{"Wrong length", "900", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.ChecksumOK(tt.number); got != tt.want {
				t.Errorf("ChecksumOK(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Bare number", "9000000009", "9000000009"},
		{"Separated number", "900 000 0009", "9000000009"},
		{"System prefixed", SystemBaseURL + "9000000009", "9000000009"},
		{"URL encoded system", "https%3A%2F%2Ffhir.nhs.uk%2FId%2Fnhs-number%7C9000000009", "9000000009"},
		{"Trailing digits in path", "Patient/9000000009", "9000000009"},
		{"Empty string", "", ""},
		{"No digits", "not-a-number", "not-a-number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.Extract(tt.input); got != tt.expected {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsCorrectSystem(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Bare valid number", "9000000009", true},
		{"System prefixed", SystemBaseURL + "9000000009", true},
		{"URL encoded system", "https%3A%2F%2Ffhir.nhs.uk%2FId%2Fnhs-number%7C9000000009", true},
		{"Wrong system", "https://example.org/other|9000000009", false},
		{"Bare invalid number", "9000000008", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsCorrectSystem(tt.input); got != tt.want {
				t.Errorf("IsCorrectSystem(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
