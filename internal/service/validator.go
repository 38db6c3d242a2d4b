package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/proxy-access-validator/internal/audit"
	"github.com/proxy-access-validator/internal/domain"
	"github.com/proxy-access-validator/pkg/nhsnumber"
)

// ValidatorService runs the full validation workflow around the
// eligibility engine: parameter screening, record parsing, decision
// evaluation, logging and audit event construction. The engine itself
// stays pure; all logging happens here.
type ValidatorService struct {
	logger  *logrus.Logger
	engine  *Engine
	numbers *nhsnumber.Validator
}

// NewValidatorService creates a new validator service.
func NewValidatorService(logger *logrus.Logger, rules Rules) *ValidatorService {
	return &ValidatorService{
		logger:  logger,
		engine:  NewEngine(rules),
		numbers: nhsnumber.NewValidator(),
	}
}

// ProxyScreeningRequest is a raw proxy-centric validation request as
// received from the caller, record payloads still undecoded. The status
// fields carry the HTTP status codes of the upstream lookups; anything
// outside 200 and 404, including an absent status, is a failed lookup.
type ProxyScreeningRequest struct {
	ProxyNHSNumber      string          `json:"proxyNhsNumber"`
	PatientNHSNumber    string          `json:"patientNhsNumber,omitempty"`
	ProxyStatus         int             `json:"pdsProxyStatus"`
	ProxyRecord         json.RawMessage `json:"pdsProxy,omitempty"`
	RelationshipStatus  int             `json:"pdsRelationshipLookupStatus"`
	RelationshipRecords json.RawMessage `json:"pdsRelationshipLookup,omitempty"`
	RequestID           string          `json:"requestId,omitempty"`
	CorrelationID       string          `json:"correlationId,omitempty"`
}

// ProxyScreeningResult is the outcome of a proxy-centric request
// together with its audit event.
type ProxyScreeningResult struct {
	Screening ProxyScreening `json:"screening"`
	Audit     *audit.Event   `json:"audit"`
}

// ScreenProxyAccess screens a proxy-centric request end to end. It
// validates the request parameters, decodes the record payloads, runs
// the proxy screening procedure and emits the matching audit event.
func (s *ValidatorService) ScreenProxyAccess(req *ProxyScreeningRequest) (*ProxyScreeningResult, error) {
	if errs := ScreenParameters(s.numbers, RequestParams{
		ProxyNHSNumber:   req.ProxyNHSNumber,
		PatientNHSNumber: req.PatientNHSNumber,
		CorrelationID:    req.CorrelationID,
	}); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	proxyID := s.numbers.Extract(req.ProxyNHSNumber)
	patientID := ""
	if req.PatientNHSNumber != "" {
		patientID = s.numbers.Extract(req.PatientNHSNumber)
	}

	in := ProxyScreeningInput{
		ProxyStatus:        LookupStatusFromHTTP(req.ProxyStatus),
		RelationshipStatus: LookupStatusFromHTTP(req.RelationshipStatus),
		PatientID:          patientID,
	}
	if in.ProxyStatus == LookupFound {
		proxy, err := ParsePersonRecord(req.ProxyRecord)
		if err != nil {
			return nil, err
		}
		in.Proxy = proxy
	}
	if in.RelationshipStatus == LookupFound {
		rels, err := ParseRelationshipRecords(req.RelationshipRecords)
		if err != nil {
			return nil, err
		}
		in.Relationships = rels
	}

	screening := s.engine.ScreenProxy(in)
	s.logger.WithFields(logrus.Fields{
		"correlation_id":  req.CorrelationID,
		"validation_code": screening.Outcome.ValidationCode,
		"eligibility":     screening.Outcome.Eligibility,
		"relationships":   len(screening.Relationships),
	}).Info("Proxy screening completed")

	return &ProxyScreeningResult{
		Screening: screening,
		Audit:     audit.NewValidationResultEvent(proxyID, patientID, screening.Outcome, req.RequestID, req.CorrelationID),
	}, nil
}

// RelationshipValidationRequest is a raw relationship-centric
// validation request as received from the caller. The status fields
// carry the HTTP status codes of the upstream lookups.
type RelationshipValidationRequest struct {
	ProxyNHSNumber      string          `json:"proxyNhsNumber"`
	PatientNHSNumber    string          `json:"patientNhsNumber"`
	PatientStatus       int             `json:"pdsPatientStatus"`
	PatientRecord       json.RawMessage `json:"pdsPatient,omitempty"`
	RelationshipStatus  int             `json:"pdsRelationshipLookupStatus"`
	RelationshipRecords json.RawMessage `json:"pdsRelationshipLookup,omitempty"`
	RequestID           string          `json:"requestId,omitempty"`
	CorrelationID       string          `json:"correlationId,omitempty"`

	// Today overrides the evaluation date; zero means the current
	// UTC date.
	Today time.Time `json:"-"`
}

// RelationshipValidationResult is the outcome of a relationship-centric
// request together with its audit event.
type RelationshipValidationResult struct {
	Decision domain.Decision `json:"decision"`
	Audit    *audit.Event    `json:"audit"`
}

// ValidatePatientAccess validates a relationship-centric request end to
// end. It validates the request parameters, decodes the record
// payloads, runs the relationship validation procedure against the
// named patient and emits the matching audit event.
func (s *ValidatorService) ValidatePatientAccess(req *RelationshipValidationRequest) (*RelationshipValidationResult, error) {
	params := RequestParams{
		ProxyNHSNumber:   req.ProxyNHSNumber,
		PatientNHSNumber: req.PatientNHSNumber,
		CorrelationID:    req.CorrelationID,
	}
	if req.PatientNHSNumber == "" {
		return nil, domain.NewValidationError("patientNhsNumber", "is required", req.PatientNHSNumber)
	}
	if errs := ScreenParameters(s.numbers, params); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	proxyID := s.numbers.Extract(req.ProxyNHSNumber)
	patientID := s.numbers.Extract(req.PatientNHSNumber)
	today := req.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	in := RelationshipValidationInput{
		PatientStatus:      LookupStatusFromHTTP(req.PatientStatus),
		RelationshipStatus: LookupStatusFromHTTP(req.RelationshipStatus),
		ProxyID:            proxyID,
		Today:              today,
	}
	if in.PatientStatus == LookupFound {
		patient, err := ParsePersonRecord(req.PatientRecord)
		if err != nil {
			return nil, err
		}
		in.Patient = patient
	}
	if in.RelationshipStatus == LookupFound {
		rels, err := ParseRelationshipRecords(req.RelationshipRecords)
		if err != nil {
			return nil, err
		}
		in.Relationships = rels
	}

	decision := s.engine.ValidateRelationship(in)
	s.logger.WithFields(logrus.Fields{
		"correlation_id":  req.CorrelationID,
		"validation_code": decision.Outcome.ValidationCode,
		"eligibility":     decision.Outcome.Eligibility,
	}).Info("Relationship validation completed")

	return &RelationshipValidationResult{
		Decision: decision,
		Audit:    audit.NewValidationResultEvent(proxyID, patientID, decision.Outcome, req.RequestID, req.CorrelationID),
	}, nil
}
