package patients

import (
	"strconv"

	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/dto/requests"
)

// draftFromRequest replays a create-entry request through the draft builder,
// so the HTTP path applies exactly the same field collection and validation
// an interactive editor would.
func draftFromRequest(request *requests.CreateEntryRequest) *models.EntryDraft {
	draft := models.NewEntryDraft(models.EntryType(request.Type))

	draft.SetField(models.FieldDescription, request.Description)
	draft.SetField(models.FieldDate, request.Date)
	draft.SetField(models.FieldSpecialist, request.Specialist)

	if request.HealthCheckRating != nil {
		draft.SetField(models.FieldHealthCheckRating, strconv.Itoa(*request.HealthCheckRating))
	}
	if request.EmployerName != "" {
		draft.SetField(models.FieldEmployerName, request.EmployerName)
	}
	if request.SickLeave != nil {
		draft.SetField(models.FieldSickLeaveStartDate, request.SickLeave.StartDate)
		draft.SetField(models.FieldSickLeaveEndDate, request.SickLeave.EndDate)
	}
	if request.Discharge != nil {
		draft.SetField(models.FieldDischargeDate, request.Discharge.Date)
		draft.SetField(models.FieldDischargeCriteria, request.Discharge.Criteria)
	}

	for _, code := range request.DiagnosisCodes {
		draft.ToggleDiagnosisCode(code)
	}

	return draft
}
