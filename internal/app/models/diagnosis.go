package models

// Diagnosis is one row of the read-only code table fetched from the record
// API. Codes are unique and never mutated after load.
type Diagnosis struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
