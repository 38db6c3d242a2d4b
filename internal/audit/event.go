// Package audit builds the validation audit events emitted after each
// eligibility decision.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/proxy-access-validator/internal/domain"
)

const (
	// Source identifies this component in emitted audit events.
	Source = "Validation Service"

	// ProxyIdentifierType names the identifier scheme used for the
	// proxy in audit events.
	ProxyIdentifierType = "NHS Number"
)

// Metadata carries the request tracing fields of an audit event.
type Metadata struct {
	ClientKey     string `json:"client_key"`
	CorrelationID string `json:"correlation_id"`
	RequestID     string `json:"request_id,omitempty"`
	Created       string `json:"created"`
	Source        string `json:"source"`
}

// SensitiveDetail carries the person identifiers of an audit event.
// These fields are handled separately so downstream consumers can
// redact them.
type SensitiveDetail struct {
	ProxyIdentifier     string `json:"proxy_identifier"`
	ProxyIdentifierType string `json:"proxy_identifier_type"`
	PatientIdentifier   string `json:"patient_identifier,omitempty"`
}

// StandardDetail carries the decision outcome of an audit event.
type StandardDetail struct {
	DetailType           domain.AuditClassification `json:"detail_type"`
	ValidationResultInfo map[string]string          `json:"validation_result_info"`
}

// Event is a complete validation audit event.
type Event struct {
	Metadata        Metadata        `json:"metadata"`
	SensitiveDetail SensitiveDetail `json:"sensitive"`
	StandardDetail  StandardDetail  `json:"standard"`
}

// NewValidationResultEvent builds the audit event for a decision
// outcome. A fresh client key is minted per event; the correlation ID
// is minted too when the caller did not supply one, so every event is
// traceable.
func NewValidationResultEvent(proxyID, patientID string, outcome domain.Outcome, requestID, correlationID string) *Event {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	return &Event{
		Metadata: Metadata{
			ClientKey:     uuid.NewString(),
			CorrelationID: correlationID,
			RequestID:     requestID,
			Created:       time.Now().UTC().Format(time.RFC3339),
			Source:        Source,
		},
		SensitiveDetail: SensitiveDetail{
			ProxyIdentifier:     proxyID,
			ProxyIdentifierType: ProxyIdentifierType,
			PatientIdentifier:   patientID,
		},
		StandardDetail: StandardDetail{
			DetailType: outcome.AuditType,
			ValidationResultInfo: map[string]string{
				outcome.ValidationCode: outcome.AuditMessage,
			},
		},
	}
}
