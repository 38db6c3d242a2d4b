package domain

// Decision is the engine's return value: the selected outcome plus, when
// eligibility is true, the relationship record that satisfied the match.
type Decision struct {
	Outcome Outcome             `json:"outcome"`
	Matched *RelationshipRecord `json:"matched,omitempty"`
}

// Eligible reports whether the decision grants access.
func (d Decision) Eligible() bool {
	return d.Outcome.Eligibility
}
