// Package nhsnumber provides extraction and Modulus 11 validation of
// 10-digit NHS numbers as issued by the national demographics service.
package nhsnumber

import (
	"net/url"
	"regexp"
	"strings"
)

// SystemBaseURL is the canonical identifier system for NHS numbers,
// including the FHIR token separator.
const SystemBaseURL = "https://fhir.nhs.uk/Id/nhs-number|"

// NHS number patterns for extraction and validation
var (
	// Exactly ten decimal digits
	numberPattern = regexp.MustCompile(`^\d{10}$`)

	// Input ending in ten decimal digits: 9000000009, %7C9000000009
	trailingPattern = regexp.MustCompile(`\d{10}$`)

	// Interior separators tolerated in user-supplied numbers
	separatorPattern = regexp.MustCompile(`[- ]`)
)

// Validator provides NHS number validation functionality
type Validator struct{}

// NewValidator creates a new NHS number validator
func NewValidator() *Validator {
	return &Validator{}
}

// Sanitize removes spaces and hyphens from the given string. All other
// characters are preserved so that checksum validation fails cleanly on
// genuinely malformed input instead of coercing it.
func (v *Validator) Sanitize(input string) string {
	return separatorPattern.ReplaceAllString(input, "")
}

// Extract attempts to pull a bare NHS number out of the input. The input
// may be a plain number, a spaced or hyphenated number, or a FHIR token
// of the form system|value (possibly URL-encoded). When no NHS number can
// be found the original input is returned unchanged; Extract never fails.
func (v *Validator) Extract(input string) string {
	decoded := urlDecode(input)

	if match := trailingPattern.FindString(decoded); match != "" {
		return match
	}

	if strings.HasPrefix(decoded, SystemBaseURL) {
		decoded = strings.TrimPrefix(decoded, SystemBaseURL)
	}

	if sanitized := v.Sanitize(decoded); numberPattern.MatchString(sanitized) {
		return sanitized
	}

	return input
}

// IsValid reports whether the given string is a valid NHS number: ten
// digits after sanitization, with a correct Modulus 11 check digit.
func (v *Validator) IsValid(number string) bool {
	sanitized := v.Sanitize(number)
	return numberPattern.MatchString(sanitized) && v.ChecksumOK(sanitized)
}

// IsCorrectSystem reports whether the input carries the correct identifier
// system. A bare value that already passes checksum validation needs no
// system qualifier; otherwise the (URL-decoded) input must be prefixed by
// the canonical NHS number system URI.
func (v *Validator) IsCorrectSystem(number string) bool {
	if v.ChecksumOK(v.Sanitize(number)) {
		return true
	}
	return strings.HasPrefix(urlDecode(number), SystemBaseURL)
}

// ChecksumOK validates the Modulus 11 check digit of a ten-digit number.
// The first nine digits are weighted 10 down to 2 and summed; the check
// value is 11 minus the sum modulo 11, with 11 treated as 0. A check
// value of exactly 10 marks the number invalid regardless of the supplied
// check digit.
func (v *Validator) ChecksumOK(number string) bool {
	if !numberPattern.MatchString(number) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(number[i]-'0') * (10 - i)
	}

	checksum := 11 - sum%11
	if checksum == 11 {
		checksum = 0
	}
	if checksum == 10 {
		return false
	}

	return checksum == int(number[9]-'0')
}

func urlDecode(input string) string {
	decoded, err := url.QueryUnescape(input)
	if err != nil {
		return input
	}
	return decoded
}
