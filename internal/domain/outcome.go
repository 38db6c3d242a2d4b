package domain

import "net/http"

// AuditClassification categorizes a validation outcome for downstream
// audit reporting. "Errored" marks upstream lookup failures, as opposed
// to business decisions that merely went against the requester.
type AuditClassification string

const (
	AuditSuccess AuditClassification = "Validation Successful"
	AuditFail    AuditClassification = "Validation Failed"
	AuditError   AuditClassification = "Validation Errored"
)

// IsValid validates the audit classification.
func (a AuditClassification) IsValid() bool {
	switch a {
	case AuditSuccess, AuditFail, AuditError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the classification.
func (a AuditClassification) String() string {
	return string(a)
}

// Outcome is one row of the validation outcome catalog. Outcomes are
// statically enumerated below; evaluation selects a row and never
// constructs new ones.
type Outcome struct {
	HTTPStatus       int                 `json:"http_status"`
	Eligibility      bool                `json:"eligibility"`
	ResponseCode     string              `json:"response_code"`
	ValidationCode   string              `json:"validation_code"`
	AuditType        AuditClassification `json:"audit_details_type"`
	AuditMessage     string              `json:"audit_msg"`
	RelationshipType string              `json:"relationship_type,omitempty"`
}

// The outcome catalog. Codes and messages are fixed: downstream auditing
// keys off them.
var (
	// All proxy-side rules met; relationships not yet evaluated.
	ValidatedProxy = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    true,
		ResponseCode:   "VALIDATED_PROXY",
		ValidationCode: "VALIDATED_PROXY",
		AuditType:      AuditSuccess,
		AuditMessage:   "Validated Proxy",
	}

	// A specific relationship matched.
	ValidatedRelationship = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    true,
		ResponseCode:   "VALIDATED_RELATIONSHIP",
		ValidationCode: "VALIDATED_RELATIONSHIP",
		AuditType:      AuditSuccess,
		AuditMessage:   "Validated Relationship",
	}

	// Proxy not recorded on the demographics service.
	ProxyNotFound = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "PROXY_NOT_FOUND",
		ValidationCode: "PROXY_NOT_FOUND",
		AuditType:      AuditFail,
		AuditMessage:   "Unable to validate: no proxy record on PDS",
	}

	// Proxy has no recorded relationships.
	ProxyNoRelationshipsFound = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "PROXY_NO_RELATIONSHIPS_FOUND",
		ValidationCode: "PROXY_NO_RELATIONSHIPS_FOUND",
		AuditType:      AuditFail,
		AuditMessage:   "Unable to validate: no proxy relationships on PDS",
	}

	// Proxy record is restricted ("S flagged").
	NoProxyConsent = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "NO_PROXY_CONSENT",
		ValidationCode: "NO_PROXY_CONSENT",
		AuditType:      AuditFail,
		AuditMessage:   "Unable to validate: proxy restricted record (-S)",
	}

	// Proxy recorded as deceased.
	ProxyDeceased = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "PROXY_DECEASED",
		ValidationCode: "PROXY_DECEASED",
		AuditType:      AuditFail,
		AuditMessage:   "Unable to validate: proxy is recorded as deceased on PDS",
	}

	// Patient lookup did not match a record.
	PatientNotFound = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "PATIENT_NOT_FOUND",
		ValidationCode: "PATIENT_NOT_FOUND",
		AuditType:      AuditFail,
		AuditMessage:   "Validation failed: get PDS patient did not match a record in PDS",
	}

	// Patient recorded as deceased.
	PatientDeceased = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "PATIENT_DECEASED",
		ValidationCode: "PATIENT_DECEASED",
		AuditType:      AuditFail,
		AuditMessage:   "Validation failed: patient is recorded as deceased on PDS",
	}

	// Patient record is sensitive or restricted.
	NoPatientConsent = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "NO_PATIENT_CONSENT",
		ValidationCode: "NO_PATIENT_CONSENT",
		AuditType:      AuditFail,
		AuditMessage:   "Validation failed: related person record is sensitive or restricted (-S)",
	}

	// Patient is over the age threshold.
	PatientNotEligibleOverAge = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "NOT_ELIGIBLE",
		ValidationCode: "PATIENT_NOT_ELIGIBLE_AGE",
		AuditType:      AuditFail,
		AuditMessage:   "Validation failed: patient not eligible - over 13",
	}

	// Relationship lookup found no relationships for the patient.
	PatientNoRelationshipsFound = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "PATIENT_NO_RELATIONSHIPS_FOUND",
		ValidationCode: "PATIENT_NO_RELATIONSHIPS_FOUND",
		AuditType:      AuditFail,
		AuditMessage:   "Unable to validate: no patient relationships on PDS",
	}

	// No relationship in the candidate list qualified. Shares its wire
	// codes with PatientNoRelationshipsFound but is a distinct catalog
	// row: the two are reached by different rules.
	PatientNotRelated = Outcome{
		HTTPStatus:     http.StatusOK,
		Eligibility:    false,
		ResponseCode:   "PATIENT_NO_RELATIONSHIPS_FOUND",
		ValidationCode: "PATIENT_NO_RELATIONSHIPS_FOUND",
		AuditType:      AuditFail,
		AuditMessage:   "Unable to validate: no patient relationships on PDS",
	}

	// The patient lookup itself failed upstream. Classified as an
	// error, not a business failure.
	PatientStatusFail = Outcome{
		HTTPStatus:     http.StatusBadRequest,
		Eligibility:    false,
		ResponseCode:   "BAD_REQUEST - One or more previous operations failed",
		ValidationCode: "BAD_REQUEST",
		AuditType:      AuditError,
		AuditMessage:   "Unable to validate: get PDS patient failed",
	}

	// The relationship lookup itself failed upstream.
	RelationStatusFail = Outcome{
		HTTPStatus:     http.StatusBadRequest,
		Eligibility:    false,
		ResponseCode:   "BAD_REQUEST - One or more previous operations failed",
		ValidationCode: "BAD_REQUEST",
		AuditType:      AuditError,
		AuditMessage:   "Unable to validate: get PDS patient failed",
	}
)

// Catalog enumerates every outcome by a stable catalog key. The key
// disambiguates rows that share a wire code.
var Catalog = map[string]Outcome{
	"VALIDATED_PROXY":                ValidatedProxy,
	"VALIDATED_RELATIONSHIP":         ValidatedRelationship,
	"PROXY_NOT_FOUND":                ProxyNotFound,
	"PROXY_NO_RELATIONSHIPS_FOUND":   ProxyNoRelationshipsFound,
	"NO_PROXY_CONSENT":               NoProxyConsent,
	"PROXY_DECEASED":                 ProxyDeceased,
	"PATIENT_NOT_FOUND":              PatientNotFound,
	"PATIENT_DECEASED":               PatientDeceased,
	"NO_PATIENT_CONSENT":             NoPatientConsent,
	"PATIENT_NOT_ELIGIBLE_OVER_13":   PatientNotEligibleOverAge,
	"PATIENT_NO_RELATIONSHIPS_FOUND": PatientNoRelationshipsFound,
	"PATIENT_NOT_RELATED":            PatientNotRelated,
	"PATIENT_STATUS_FAIL":            PatientStatusFail,
	"RELATION_STATUS_FAIL":           RelationStatusFail,
}
