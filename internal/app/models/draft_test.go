package models

import (
	"testing"

	"patientor-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharedDraftFields(draft *EntryDraft) {
	draft.SetField(FieldDescription, "Yearly control visit")
	draft.SetField(FieldDate, "2024-03-15")
	draft.SetField(FieldSpecialist, "Dr House")
}

func TestEntryDraftBuild(t *testing.T) {
	t.Run("health check", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeHealthCheck)
		sharedDraftFields(draft)
		draft.SetField(FieldHealthCheckRating, "1")

		entry, verr := draft.Build()
		require.Nil(t, verr)

		healthCheck, ok := entry.(*HealthCheckEntry)
		require.True(t, ok)
		assert.Equal(t, RatingLowRisk, healthCheck.HealthCheckRating)
		assert.Equal(t, "Yearly control visit", healthCheck.Description)
		assert.Empty(t, healthCheck.ID, "the record API assigns the id, not the draft")
	})

	t.Run("occupational healthcare without sick leave", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeOccupationalHealthcare)
		sharedDraftFields(draft)
		draft.SetField(FieldEmployerName, "FBI")

		entry, verr := draft.Build()
		require.Nil(t, verr)

		occupational, ok := entry.(*OccupationalHealthcareEntry)
		require.True(t, ok)
		assert.Equal(t, "FBI", occupational.EmployerName)
		assert.Nil(t, occupational.SickLeave)
	})

	t.Run("occupational healthcare with sick leave", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeOccupationalHealthcare)
		sharedDraftFields(draft)
		draft.SetField(FieldEmployerName, "FBI")
		draft.SetField(FieldSickLeaveStartDate, "2024-03-16")
		draft.SetField(FieldSickLeaveEndDate, "2024-03-20")

		entry, verr := draft.Build()
		require.Nil(t, verr)

		occupational := entry.(*OccupationalHealthcareEntry)
		require.NotNil(t, occupational.SickLeave)
		assert.Equal(t, "2024-03-16", occupational.SickLeave.StartDate)
		assert.Equal(t, "2024-03-20", occupational.SickLeave.EndDate)
	})

	t.Run("hospital", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeHospital)
		sharedDraftFields(draft)
		draft.SetField(FieldDischargeDate, "2024-03-20")
		draft.SetField(FieldDischargeCriteria, "Symptoms resolved")

		entry, verr := draft.Build()
		require.Nil(t, verr)

		hospital := entry.(*HospitalEntry)
		assert.Equal(t, "2024-03-20", hospital.Discharge.Date)
		assert.Equal(t, "Symptoms resolved", hospital.Discharge.Criteria)
	})

	t.Run("diagnosis codes carried onto the entry", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeHealthCheck)
		sharedDraftFields(draft)
		draft.SetField(FieldHealthCheckRating, "0")
		draft.ToggleDiagnosisCode("M24.2")
		draft.ToggleDiagnosisCode("J10")

		entry, verr := draft.Build()
		require.Nil(t, verr)
		assert.Equal(t, []string{"M24.2", "J10"}, entry.Base().DiagnosisCodes)
	})
}

func TestEntryDraftBuildValidationOrder(t *testing.T) {
	t.Run("description checked first", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeHealthCheck)

		entry, verr := draft.Build()
		assert.Nil(t, entry)
		require.NotNil(t, verr)
		assert.Equal(t, FieldDescription, verr.Field)
	})

	t.Run("specialist checked before date", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeHealthCheck)
		draft.SetField(FieldDescription, "Check")
		draft.SetField(FieldDate, "not-a-date")

		_, verr := draft.Build()
		require.NotNil(t, verr)
		assert.Equal(t, FieldSpecialist, verr.Field)
	})

	t.Run("date checked before kind-specific fields", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeHealthCheck)
		draft.SetField(FieldDescription, "Check")
		draft.SetField(FieldSpecialist, "Dr House")
		draft.SetField(FieldDate, "15.3.2024")

		_, verr := draft.Build()
		require.NotNil(t, verr)
		assert.Equal(t, FieldDate, verr.Field)
	})

	t.Run("draft unchanged after a failed build", func(t *testing.T) {
		draft := NewEntryDraft(EntryTypeHealthCheck)
		sharedDraftFields(draft)
		draft.SetField(FieldHealthCheckRating, "9")

		_, verr := draft.Build()
		require.NotNil(t, verr)

		draft.SetField(FieldHealthCheckRating, "3")
		entry, verr := draft.Build()
		require.Nil(t, verr)
		assert.Equal(t, RatingCriticalRisk, entry.(*HealthCheckEntry).HealthCheckRating)
	})
}

func TestEntryDraftBuildHealthCheckRating(t *testing.T) {
	buildWithRating := func(raw string) (Entry, *exceptions.ValidationError) {
		draft := NewEntryDraft(EntryTypeHealthCheck)
		sharedDraftFields(draft)
		draft.SetField(FieldHealthCheckRating, raw)
		return draft.Build()
	}

	for _, raw := range []string{"0", "1", "2", "3"} {
		entry, verr := buildWithRating(raw)
		require.Nil(t, verr, "rating %s should be accepted", raw)
		assert.True(t, entry.(*HealthCheckEntry).HealthCheckRating.Valid())
	}

	for _, raw := range []string{"", "-1", "4", "two", "1.5"} {
		_, verr := buildWithRating(raw)
		require.NotNil(t, verr, "rating %q should be rejected", raw)
		assert.Equal(t, FieldHealthCheckRating, verr.Field)
	}
}

func TestEntryDraftBuildSickLeave(t *testing.T) {
	buildWithSickLeave := func(start, end string) (Entry, *exceptions.ValidationError) {
		draft := NewEntryDraft(EntryTypeOccupationalHealthcare)
		sharedDraftFields(draft)
		draft.SetField(FieldEmployerName, "FBI")
		draft.SetField(FieldSickLeaveStartDate, start)
		draft.SetField(FieldSickLeaveEndDate, end)
		return draft.Build()
	}

	t.Run("start after end rejected", func(t *testing.T) {
		_, verr := buildWithSickLeave("2024-03-20", "2024-03-16")
		require.NotNil(t, verr)
		assert.Equal(t, "sickLeave", verr.Field)
	})

	t.Run("start equal to end accepted", func(t *testing.T) {
		entry, verr := buildWithSickLeave("2024-03-16", "2024-03-16")
		require.Nil(t, verr)
		assert.NotNil(t, entry.(*OccupationalHealthcareEntry).SickLeave)
	})

	t.Run("only one bound rejected", func(t *testing.T) {
		_, verr := buildWithSickLeave("2024-03-16", "")
		require.NotNil(t, verr)
		assert.Equal(t, "sickLeave", verr.Field)

		_, verr = buildWithSickLeave("", "2024-03-16")
		require.NotNil(t, verr)
		assert.Equal(t, "sickLeave", verr.Field)
	})
}

func TestEntryDraftSelectType(t *testing.T) {
	draft := NewEntryDraft(EntryTypeHealthCheck)
	sharedDraftFields(draft)
	draft.SetField(FieldHealthCheckRating, "2")

	draft.SelectType(EntryTypeHospital)

	assert.Equal(t, EntryTypeHospital, draft.Type())
	assert.Equal(t, "Yearly control visit", draft.Field(FieldDescription), "shared fields survive the switch")
	assert.Empty(t, draft.Field(FieldHealthCheckRating), "kind-specific fields are reset")
}

func TestEntryDraftToggleDiagnosisCode(t *testing.T) {
	draft := NewEntryDraft(EntryTypeHealthCheck)

	draft.ToggleDiagnosisCode("J10")
	draft.ToggleDiagnosisCode("M24.2")
	draft.ToggleDiagnosisCode("Z57.1")
	assert.Equal(t, []string{"J10", "M24.2", "Z57.1"}, draft.DiagnosisCodes())

	// Toggling an already selected code removes it and keeps the rest in order.
	draft.ToggleDiagnosisCode("M24.2")
	assert.Equal(t, []string{"J10", "Z57.1"}, draft.DiagnosisCodes())

	draft.ToggleDiagnosisCode("M24.2")
	assert.Equal(t, []string{"J10", "Z57.1", "M24.2"}, draft.DiagnosisCodes())
}

func TestEntryDraftBuildRejectsEmptyDiagnosisCode(t *testing.T) {
	draft := NewEntryDraft(EntryTypeHealthCheck)
	sharedDraftFields(draft)
	draft.SetField(FieldHealthCheckRating, "0")
	draft.ToggleDiagnosisCode("")

	_, verr := draft.Build()
	require.NotNil(t, verr)
	assert.Equal(t, "diagnosisCodes", verr.Field)
}
