package service

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/proxy-access-validator/internal/domain"
)

// ParsePersonRecord decodes a demographics record payload. An empty or
// malformed payload yields a RecordParseError so callers can tell a
// parse failure apart from a record that simply fails the eligibility
// rules.
func ParsePersonRecord(data []byte) (*domain.PersonRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.NewRecordParseError("person", errEmptyPayload)
	}
	var record domain.PersonRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, domain.NewRecordParseError("person", err)
	}
	return &record, nil
}

// ParseRelationshipRecords decodes a relationship list payload. The
// payload is a JSON array; unknown fields are ignored so that upstream
// additions do not break decoding.
func ParseRelationshipRecords(data []byte) ([]domain.RelationshipRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.NewRecordParseError("relationship", errEmptyPayload)
	}
	var records []domain.RelationshipRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewRecordParseError("relationship", err)
	}
	return records, nil
}

var errEmptyPayload = errors.New("empty payload")
