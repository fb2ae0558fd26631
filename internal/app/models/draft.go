package models

import (
	"strconv"
	"strings"
	"time"

	"patientor-service/internal/pkg/exceptions"
)

// Draft field names. Raw values are stored as typed-in strings; nothing is
// validated until Build so editing is never blocked.
const (
	FieldDescription        = "description"
	FieldDate               = "date"
	FieldSpecialist         = "specialist"
	FieldHealthCheckRating  = "healthCheckRating"
	FieldEmployerName       = "employerName"
	FieldSickLeaveStartDate = "sickLeaveStartDate"
	FieldSickLeaveEndDate   = "sickLeaveEndDate"
	FieldDischargeDate      = "dischargeDate"
	FieldDischargeCriteria  = "dischargeCriteria"
)

var kindSpecificFields = []string{
	FieldHealthCheckRating,
	FieldEmployerName,
	FieldSickLeaveStartDate,
	FieldSickLeaveEndDate,
	FieldDischargeDate,
	FieldDischargeCriteria,
}

const dateLayout = "2006-01-02"

// EntryDraft collects free-form field values for one not-yet-created entry.
// The strict variant type only ever exists as the output of Build; a draft is
// never a partially constructed Entry.
type EntryDraft struct {
	entryType      EntryType
	fields         map[string]string
	diagnosisCodes []string
}

func NewEntryDraft(entryType EntryType) *EntryDraft {
	return &EntryDraft{
		entryType: entryType,
		fields:    make(map[string]string),
	}
}

// SelectType switches the draft to another variant. Kind-specific fields are
// reset to empty; shared fields the user already typed survive the switch.
func (d *EntryDraft) SelectType(entryType EntryType) {
	d.entryType = entryType
	for _, field := range kindSpecificFields {
		delete(d.fields, field)
	}
}

func (d *EntryDraft) Type() EntryType {
	return d.entryType
}

// SetField stores one raw field value without validating it.
func (d *EntryDraft) SetField(name, value string) {
	d.fields[name] = value
}

func (d *EntryDraft) Field(name string) string {
	return d.fields[name]
}

// ToggleDiagnosisCode adds the code to the selection, or removes it when it
// is already selected. Selection order is preserved.
func (d *EntryDraft) ToggleDiagnosisCode(code string) {
	for i, selected := range d.diagnosisCodes {
		if selected == code {
			d.diagnosisCodes = append(d.diagnosisCodes[:i], d.diagnosisCodes[i+1:]...)
			return
		}
	}
	d.diagnosisCodes = append(d.diagnosisCodes, code)
}

func (d *EntryDraft) DiagnosisCodes() []string {
	return append([]string(nil), d.diagnosisCodes...)
}

// Build validates the raw fields and constructs the matching variant. Rules
// run in a fixed order and the first failure wins; the draft itself is left
// untouched so the user can correct and rebuild. Catalog membership of
// diagnosis codes is deliberately not checked: the catalog may lag the
// record, unknown codes simply render unlabeled.
func (d *EntryDraft) Build() (Entry, *exceptions.ValidationError) {
	description := strings.TrimSpace(d.fields[FieldDescription])
	if description == "" {
		return nil, &exceptions.ValidationError{Field: FieldDescription, Message: "is required"}
	}
	specialist := strings.TrimSpace(d.fields[FieldSpecialist])
	if specialist == "" {
		return nil, &exceptions.ValidationError{Field: FieldSpecialist, Message: "is required"}
	}

	date := strings.TrimSpace(d.fields[FieldDate])
	if !validDate(date) {
		return nil, &exceptions.ValidationError{Field: FieldDate, Message: "must be a valid date in YYYY-MM-DD format"}
	}

	base := EntryBase{
		Description: description,
		Date:        date,
		Specialist:  specialist,
	}

	entry, err := d.buildVariant(base)
	if err != nil {
		return nil, err
	}

	for _, code := range d.diagnosisCodes {
		if strings.TrimSpace(code) == "" {
			return nil, &exceptions.ValidationError{Field: "diagnosisCodes", Message: "must not contain an empty code"}
		}
	}

	return entry, nil
}

func (d *EntryDraft) buildVariant(base EntryBase) (Entry, *exceptions.ValidationError) {
	base.DiagnosisCodes = append([]string(nil), d.diagnosisCodes...)

	switch d.entryType {
	case EntryTypeHealthCheck:
		rawRating := strings.TrimSpace(d.fields[FieldHealthCheckRating])
		if rawRating == "" {
			return nil, &exceptions.ValidationError{Field: FieldHealthCheckRating, Message: "is required"}
		}
		parsed, err := strconv.Atoi(rawRating)
		if err != nil || !HealthCheckRating(parsed).Valid() {
			return nil, &exceptions.ValidationError{Field: FieldHealthCheckRating, Message: "must be an integer between 0 and 3"}
		}
		return &HealthCheckEntry{EntryBase: base, HealthCheckRating: HealthCheckRating(parsed)}, nil

	case EntryTypeOccupationalHealthcare:
		employer := strings.TrimSpace(d.fields[FieldEmployerName])
		if employer == "" {
			return nil, &exceptions.ValidationError{Field: FieldEmployerName, Message: "is required"}
		}
		sickLeave, verr := d.buildSickLeave()
		if verr != nil {
			return nil, verr
		}
		return &OccupationalHealthcareEntry{EntryBase: base, EmployerName: employer, SickLeave: sickLeave}, nil

	case EntryTypeHospital:
		dischargeDate := strings.TrimSpace(d.fields[FieldDischargeDate])
		if !validDate(dischargeDate) {
			return nil, &exceptions.ValidationError{Field: FieldDischargeDate, Message: "must be a valid date in YYYY-MM-DD format"}
		}
		criteria := strings.TrimSpace(d.fields[FieldDischargeCriteria])
		if criteria == "" {
			return nil, &exceptions.ValidationError{Field: FieldDischargeCriteria, Message: "is required"}
		}
		return &HospitalEntry{EntryBase: base, Discharge: Discharge{Date: dischargeDate, Criteria: criteria}}, nil

	default:
		return nil, &exceptions.ValidationError{Field: "type", Message: "must be one of HealthCheck, OccupationalHealthcare, Hospital"}
	}
}

func (d *EntryDraft) buildSickLeave() (*SickLeave, *exceptions.ValidationError) {
	start := strings.TrimSpace(d.fields[FieldSickLeaveStartDate])
	end := strings.TrimSpace(d.fields[FieldSickLeaveEndDate])

	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, &exceptions.ValidationError{Field: "sickLeave", Message: "requires both a start and an end date"}
	}

	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, &exceptions.ValidationError{Field: FieldSickLeaveStartDate, Message: "must be a valid date in YYYY-MM-DD format"}
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, &exceptions.ValidationError{Field: FieldSickLeaveEndDate, Message: "must be a valid date in YYYY-MM-DD format"}
	}
	if startDate.After(endDate) {
		return nil, &exceptions.ValidationError{Field: "sickLeave", Message: "start date must not be after end date"}
	}

	return &SickLeave{StartDate: start, EndDate: end}, nil
}

func validDate(value string) bool {
	if value == "" {
		return false
	}
	_, err := time.Parse(dateLayout, value)
	return err == nil
}
