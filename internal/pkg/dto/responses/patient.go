package responses

type PatientRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DateOfBirth string          `json:"dateOfBirth,omitempty"`
	SSN         string          `json:"ssn,omitempty"`
	Gender      string          `json:"gender"`
	Occupation  string          `json:"occupation"`
	Entries     []RenderedEntry `json:"entries"`
}

type Diagnosis struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
