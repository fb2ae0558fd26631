package models

import "encoding/json"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient is owned by the record API; this service only reads it and replaces
// it wholesale with the server copy after a successful entry submission. The
// entries sequence is append-only from this service's perspective.
type Patient struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DateOfBirth string  `json:"dateOfBirth,omitempty"`
	SSN         string  `json:"ssn,omitempty"`
	Gender      string  `json:"gender"`
	Occupation  string  `json:"occupation"`
	Entries     Entries `json:"entries"`
}

// Entries decodes a heterogeneous entry list through the tagged union.
type Entries []Entry

func (es *Entries) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	entries := make(Entries, 0, len(raw))
	for _, item := range raw {
		entry, err := UnmarshalEntry(item)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	*es = entries
	return nil
}
