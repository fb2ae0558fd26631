package patients

import (
	"fmt"

	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/dto/responses"
)

// PresentEntry maps one entry variant to its display-ready projection. It is
// a pure function and total over the union: the dispatch is an EntryVisitor,
// so a variant without a presentation case does not compile.
func PresentEntry(entry models.Entry, catalog []models.Diagnosis) responses.RenderedEntry {
	presenter := &entryPresenter{catalog: catalog}
	models.VisitEntry(entry, presenter)
	return presenter.rendered
}

// PresentPatient renders a whole patient record, entries in stored order.
func PresentPatient(patient *models.Patient, catalog []models.Diagnosis) *responses.PatientRecord {
	entries := make([]responses.RenderedEntry, 0, len(patient.Entries))
	for _, entry := range patient.Entries {
		entries = append(entries, PresentEntry(entry, catalog))
	}
	return &responses.PatientRecord{
		ID:          patient.ID,
		Name:        patient.Name,
		DateOfBirth: patient.DateOfBirth,
		SSN:         patient.SSN,
		Gender:      patient.Gender,
		Occupation:  patient.Occupation,
		Entries:     entries,
	}
}

type entryPresenter struct {
	catalog  []models.Diagnosis
	rendered responses.RenderedEntry
}

func (p *entryPresenter) VisitHealthCheck(entry *models.HealthCheckEntry) {
	p.rendered = p.shared(entry)
	rating := int(entry.HealthCheckRating)
	p.rendered.HealthCheckRating = &rating
	p.rendered.Summary = fmt.Sprintf("health check rating %d (%s)", rating, ratingLabel(entry.HealthCheckRating))
}

func (p *entryPresenter) VisitOccupationalHealthcare(entry *models.OccupationalHealthcareEntry) {
	p.rendered = p.shared(entry)
	p.rendered.EmployerName = entry.EmployerName
	p.rendered.Summary = "employer " + entry.EmployerName
	if entry.SickLeave != nil {
		p.rendered.SickLeave = &responses.RenderedPeriod{
			StartDate: entry.SickLeave.StartDate,
			EndDate:   entry.SickLeave.EndDate,
		}
		p.rendered.Summary += fmt.Sprintf(", sick leave from %s to %s", entry.SickLeave.StartDate, entry.SickLeave.EndDate)
	}
}

func (p *entryPresenter) VisitHospital(entry *models.HospitalEntry) {
	p.rendered = p.shared(entry)
	p.rendered.Discharge = &responses.RenderedDischarge{
		Date:     entry.Discharge.Date,
		Criteria: entry.Discharge.Criteria,
	}
	p.rendered.Summary = fmt.Sprintf("discharged %s: %s", entry.Discharge.Date, entry.Discharge.Criteria)
}

func (p *entryPresenter) shared(entry models.Entry) responses.RenderedEntry {
	base := entry.Base()
	return responses.RenderedEntry{
		Type:        string(entry.EntryType()),
		ID:          base.ID,
		Date:        base.Date,
		Description: base.Description,
		Specialist:  base.Specialist,
		Diagnoses:   resolveDiagnoses(base.DiagnosisCodes, p.catalog),
	}
}

// resolveDiagnoses labels each code through the catalog; unknown codes pass
// through as the bare code. Order and duplicates are kept exactly as stored.
// A list holding only an empty first code is an artifact of comma-split
// input and renders as nothing.
func resolveDiagnoses(codes []string, catalog []models.Diagnosis) []responses.RenderedDiagnosis {
	if len(codes) == 0 || codes[0] == "" {
		return nil
	}

	resolved := make([]responses.RenderedDiagnosis, 0, len(codes))
	for _, code := range codes {
		resolved = append(resolved, responses.RenderedDiagnosis{
			Code:  code,
			Label: diagnosisLabel(code, catalog),
		})
	}
	return resolved
}

func diagnosisLabel(code string, catalog []models.Diagnosis) string {
	for _, diagnosis := range catalog {
		if diagnosis.Code == code {
			return diagnosis.Name
		}
	}
	return code
}

func ratingLabel(rating models.HealthCheckRating) string {
	switch rating {
	case models.RatingHealthy:
		return "healthy"
	case models.RatingLowRisk:
		return "low risk"
	case models.RatingHighRisk:
		return "high risk"
	case models.RatingCriticalRisk:
		return "critical risk"
	default:
		// Ratings are validated at construction; reaching this is a
		// contract violation.
		panic(fmt.Sprintf("health check rating %d outside the closed range", rating))
	}
}
