package responses

// RenderedDiagnosis pairs a code with its display label. When the catalog has
// no row for the code the label is the code itself.
type RenderedDiagnosis struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// RenderedEntry is the display-ready projection of one entry variant. Type is
// always set; the kind-specific fields are populated for exactly one kind.
type RenderedEntry struct {
	Type        string              `json:"type"`
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	Description string              `json:"description"`
	Specialist  string              `json:"specialist"`
	Summary     string              `json:"summary"`
	Diagnoses   []RenderedDiagnosis `json:"diagnoses,omitempty"`

	HealthCheckRating *int               `json:"healthCheckRating,omitempty"`
	EmployerName      string             `json:"employerName,omitempty"`
	SickLeave         *RenderedPeriod    `json:"sickLeave,omitempty"`
	Discharge         *RenderedDischarge `json:"discharge,omitempty"`
}

type RenderedPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type RenderedDischarge struct {
	Date     string `json:"date"`
	Criteria string `json:"criteria"`
}
