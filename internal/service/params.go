package service

import (
	"github.com/google/uuid"

	"github.com/proxy-access-validator/internal/domain"
	"github.com/proxy-access-validator/pkg/nhsnumber"
)

// RequestParams carries the caller-supplied request parameters that are
// screened before any record is parsed or rule evaluated.
type RequestParams struct {
	ProxyNHSNumber   string
	PatientNHSNumber string
	CorrelationID    string
}

// ScreenParameters validates the request parameters and returns one
// ValidationError per defect. The proxy identifier is required and must
// be a checksum-valid identifier from the national numbering system.
// The patient identifier is optional but is held to the same checks
// when present. A correlation ID, when present, must be a UUID.
func ScreenParameters(v *nhsnumber.Validator, params RequestParams) []error {
	var errs []error

	proxy := v.Extract(params.ProxyNHSNumber)
	switch {
	case params.ProxyNHSNumber == "":
		errs = append(errs, domain.NewValidationError("proxyNhsNumber", "is required", params.ProxyNHSNumber))
	case !v.IsValid(proxy):
		errs = append(errs, domain.NewValidationError("proxyNhsNumber", "is not a valid NHS number", params.ProxyNHSNumber))
	case !v.IsCorrectSystem(params.ProxyNHSNumber):
		errs = append(errs, domain.NewValidationError("proxyNhsNumber", "is not from the NHS number system", params.ProxyNHSNumber))
	}

	if params.PatientNHSNumber != "" {
		patient := v.Extract(params.PatientNHSNumber)
		switch {
		case !v.IsValid(patient):
			errs = append(errs, domain.NewValidationError("patientNhsNumber", "is not a valid NHS number", params.PatientNHSNumber))
		case !v.IsCorrectSystem(params.PatientNHSNumber):
			errs = append(errs, domain.NewValidationError("patientNhsNumber", "is not from the NHS number system", params.PatientNHSNumber))
		}
	}

	if params.CorrelationID != "" {
		if _, err := uuid.Parse(params.CorrelationID); err != nil {
			errs = append(errs, domain.NewValidationError("correlationId", "is not a valid UUID", params.CorrelationID))
		}
	}

	return errs
}
