// Package service implements the relationship eligibility decision
// procedures over the domain records, together with record parsing and
// request parameter screening.
package service

import (
	"net/http"
	"time"

	"github.com/proxy-access-validator/internal/domain"
)

// LookupStatus models the result of an upstream demographics lookup as
// reported by the caller. The engine performs no I/O itself; it only
// consumes these signals.
type LookupStatus string

const (
	LookupFound    LookupStatus = "FOUND"
	LookupNotFound LookupStatus = "NOT_FOUND"
	LookupFailed   LookupStatus = "FAILED"
)

// IsValid validates the lookup status.
func (s LookupStatus) IsValid() bool {
	switch s {
	case LookupFound, LookupNotFound, LookupFailed:
		return true
	default:
		return false
	}
}

// LookupStatusFromHTTP maps an upstream HTTP status code onto a
// LookupStatus: 200 is found, 404 is not found, anything else is a
// failed lookup.
func LookupStatusFromHTTP(code int) LookupStatus {
	switch code {
	case http.StatusOK:
		return LookupFound
	case http.StatusNotFound:
		return LookupNotFound
	default:
		return LookupFailed
	}
}

// Rules carries the policy constants the decision procedures evaluate
// against.
type Rules struct {
	RelationCode     string
	AgeLimit         int
	UnrestrictedCode string
}

// DefaultRules returns the fixed production policy: the mother
// relationship code, an age threshold of 13, and the unrestricted
// security marking.
func DefaultRules() Rules {
	return Rules{
		RelationCode:     "MTH",
		AgeLimit:         13,
		UnrestrictedCode: "U",
	}
}

// Engine evaluates the eligibility decision procedures. It is stateless
// and safe for concurrent use: every evaluation depends only on its
// inputs and the rule constants.
type Engine struct {
	rules Rules
}

// NewEngine creates a new eligibility engine with the given rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the policy constants the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// ProxyScreeningInput is the input to the proxy-centric procedure: the
// proxy's own record and relationship list, with the upstream lookup
// signals, before any specific patient has been selected.
type ProxyScreeningInput struct {
	ProxyStatus        LookupStatus
	Proxy              *domain.PersonRecord
	RelationshipStatus LookupStatus
	Relationships      []domain.RelationshipRecord

	// PatientID optionally narrows the returned relationship list to
	// entries pointing at this identifier. Empty means no filtering.
	PatientID string
}

// ProxyScreening is the proxy-centric procedure's result: the selected
// outcome and, when the proxy validated, the (possibly filtered)
// relationship list.
type ProxyScreening struct {
	Outcome       domain.Outcome              `json:"outcome"`
	Relationships []domain.RelationshipRecord `json:"relationships,omitempty"`
}

// screeningRule pairs a predicate with the outcome selected when it
// fires. Rules are evaluated in declaration order and short-circuit on
// the first match, keeping rule order auditable.
type screeningRule struct {
	applies func() bool
	outcome domain.Outcome
}

func firstMatch(rules []screeningRule) (domain.Outcome, bool) {
	for _, r := range rules {
		if r.applies() {
			return r.outcome, true
		}
	}
	return domain.Outcome{}, false
}

// ScreenProxy runs the proxy-centric procedure: it screens the proxy's
// own record before relationships are evaluated. Checks run in fixed
// order (record found, alive, unrestricted, relationships found) and
// stop at the first failure. Any lookup status other than found or
// not-found, including an absent one, selects the error-classified
// outcome for that lookup; evaluation never proceeds on a failed
// upstream signal.
func (e *Engine) ScreenProxy(in ProxyScreeningInput) ProxyScreening {
	rules := []screeningRule{
		{func() bool { return in.ProxyStatus == LookupNotFound }, domain.ProxyNotFound},
		{func() bool { return in.ProxyStatus != LookupFound }, domain.PatientStatusFail},
		{func() bool { return domain.IsDeceased(in.Proxy) }, domain.ProxyDeceased},
		{func() bool { return e.restricted(domain.SecurityMarking(in.Proxy)) }, domain.NoProxyConsent},
		{func() bool { return in.RelationshipStatus == LookupNotFound }, domain.ProxyNoRelationshipsFound},
		{func() bool { return in.RelationshipStatus != LookupFound }, domain.RelationStatusFail},
	}

	if outcome, ok := firstMatch(rules); ok {
		return ProxyScreening{Outcome: outcome}
	}

	return ProxyScreening{
		Outcome:       domain.ValidatedProxy,
		Relationships: filterByRelatedIdentifier(in.Relationships, in.PatientID),
	}
}

// RelationshipValidationInput is the input to the relationship-centric
// procedure: a specific patient, the candidate relationships, and the
// proxy identifier a relationship must point at to qualify.
type RelationshipValidationInput struct {
	PatientStatus      LookupStatus
	Patient            *domain.PersonRecord
	RelationshipStatus LookupStatus
	Relationships      []domain.RelationshipRecord
	ProxyID            string

	// Today is the evaluation date. It is an explicit input so that
	// age and period arithmetic is deterministic and testable.
	Today time.Time
}

// ValidateRelationship runs the relationship-centric procedure against
// the patient record and candidate relationships. Upstream lookup
// signals are checked first, with anything other than found or
// not-found selecting the error-classified outcome for that lookup;
// then the patient rules run in fixed order
// (alive, unrestricted, under the age threshold), and finally the
// candidate relationships are scanned in input order for one that
// carries the qualifying relationship code and points at the proxy.
// Relationships that are inactive or outside their validity period are
// treated as if they did not exist.
func (e *Engine) ValidateRelationship(in RelationshipValidationInput) domain.Decision {
	rules := []screeningRule{
		{func() bool { return in.PatientStatus == LookupNotFound }, domain.PatientNotFound},
		{func() bool { return in.PatientStatus != LookupFound }, domain.PatientStatusFail},
		{func() bool { return in.RelationshipStatus == LookupNotFound }, domain.PatientNoRelationshipsFound},
		{func() bool { return in.RelationshipStatus != LookupFound }, domain.RelationStatusFail},
		{func() bool { return domain.IsDeceased(in.Patient) }, domain.PatientDeceased},
		{func() bool { return e.restricted(domain.SecurityMarking(in.Patient)) }, domain.NoPatientConsent},
		{func() bool { return e.overAgeLimit(in.Patient, in.Today) }, domain.PatientNotEligibleOverAge},
	}

	if outcome, ok := firstMatch(rules); ok {
		return domain.Decision{Outcome: outcome}
	}

	for i := range in.Relationships {
		rel := &in.Relationships[i]
		if !rel.IsActive() || !domain.IsTemporallyActive(rel, in.Today) {
			continue
		}
		if e.hasRelationCode(rel) && rel.RelatedIdentifier() == in.ProxyID {
			return domain.Decision{Outcome: domain.ValidatedRelationship, Matched: rel}
		}
	}

	return domain.Decision{Outcome: domain.PatientNotRelated}
}

// restricted reports whether a security marking restricts the record.
// An absent marking is not a restriction.
func (e *Engine) restricted(marking string) bool {
	return marking != "" && marking != e.rules.UnrestrictedCode
}

// overAgeLimit reports whether the patient has reached the age
// threshold. A record with no parseable birth date is not over the
// limit; the age rule cannot fire without an age.
func (e *Engine) overAgeLimit(p *domain.PersonRecord, today time.Time) bool {
	age, ok := domain.AgeYears(p, today)
	return ok && age >= e.rules.AgeLimit
}

// hasRelationCode reports whether any relationship coding on the record
// carries the qualifying code.
func (e *Engine) hasRelationCode(rel *domain.RelationshipRecord) bool {
	for _, code := range domain.RelationshipTypeCodes(rel) {
		if code == e.rules.RelationCode {
			return true
		}
	}
	return false
}

func filterByRelatedIdentifier(rels []domain.RelationshipRecord, id string) []domain.RelationshipRecord {
	if id == "" {
		return rels
	}
	var filtered []domain.RelationshipRecord
	for _, rel := range rels {
		if rel.RelatedIdentifier() == id {
			filtered = append(filtered, rel)
		}
	}
	return filtered
}
