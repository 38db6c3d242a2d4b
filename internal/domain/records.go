// Package domain contains the core business entities and decision types
// for proxy-access relationship validation: person and relationship
// records as returned by the national demographics service, the closed
// catalog of validation outcomes, and the predicates the eligibility
// rules are built from.
package domain

// Coding represents a single code drawn from a terminology system.
type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// CodeableConcept represents a concept that may be coded in one or more
// terminology systems.
type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Identifier represents a system-qualified identifier such as an NHS number.
type Identifier struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Period represents a validity window. Either boundary may be absent, and
// dates may be partial (year or year-month).
type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Meta carries record-level metadata; only the security labels are of
// interest to the validation rules.
type Meta struct {
	Security []Coding `json:"security,omitempty"`
}

// PersonRecord represents a patient or proxy record as supplied by the
// demographics lookup. Records are value data: the engine never mutates
// them and holds no reference to them between evaluations.
type PersonRecord struct {
	ID               string       `json:"id,omitempty"`
	Identifier       []Identifier `json:"identifier,omitempty"`
	BirthDate        string       `json:"birthDate,omitempty"`
	DeceasedBoolean  *bool        `json:"deceasedBoolean,omitempty"`
	DeceasedDateTime string       `json:"deceasedDateTime,omitempty"`
	Meta             *Meta        `json:"meta,omitempty"`
}

// NHSNumber returns the person's primary identifier value, or the empty
// string when the record carries no identifier.
func (p *PersonRecord) NHSNumber() string {
	if p == nil || len(p.Identifier) == 0 {
		return ""
	}
	return p.Identifier[0].Value
}

// PatientReference points at the person a relationship record relates to.
type PatientReference struct {
	Identifier *Identifier `json:"identifier,omitempty"`
}

// RelationshipRecord represents a claimed relationship between a related
// person and a patient, with an optional validity period.
type RelationshipRecord struct {
	ID           string            `json:"id,omitempty"`
	Active       *bool             `json:"active,omitempty"`
	Patient      *PatientReference `json:"patient,omitempty"`
	Relationship []CodeableConcept `json:"relationship,omitempty"`
	Period       *Period           `json:"period,omitempty"`
}

// RelatedIdentifier returns the identifier value of the person this
// relationship points at, or the empty string when absent.
func (r *RelationshipRecord) RelatedIdentifier() string {
	if r == nil || r.Patient == nil || r.Patient.Identifier == nil {
		return ""
	}
	return r.Patient.Identifier.Value
}

// IsActive reports the record's active flag; an absent flag counts as
// active.
func (r *RelationshipRecord) IsActive() bool {
	if r == nil {
		return false
	}
	return r.Active == nil || *r.Active
}
