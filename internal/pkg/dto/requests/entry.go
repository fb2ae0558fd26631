package requests

// CreateEntryRequest carries the raw draft fields for a new entry. Only the
// type tag is validated at the transport edge; field rules are applied by the
// draft builder so the error the client sees names the offending field.
type CreateEntryRequest struct {
	Type              string            `json:"type" validate:"required,entry_type"`
	Description       string            `json:"description"`
	Date              string            `json:"date"`
	Specialist        string            `json:"specialist"`
	HealthCheckRating *int              `json:"healthCheckRating,omitempty"`
	EmployerName      string            `json:"employerName,omitempty"`
	SickLeave         *SickLeavePeriod  `json:"sickLeave,omitempty"`
	Discharge         *DischargeDetails `json:"discharge,omitempty"`
	DiagnosisCodes    []string          `json:"diagnosisCodes,omitempty"`
}

type SickLeavePeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type DischargeDetails struct {
	Date     string `json:"date"`
	Criteria string `json:"criteria"`
}
