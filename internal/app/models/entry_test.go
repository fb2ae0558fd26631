package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalEntry(t *testing.T) {
	t.Run("HealthCheck", func(t *testing.T) {
		payload := `{
			"type": "HealthCheck",
			"id": "entry-1",
			"description": "Annual check",
			"date": "2024-03-15",
			"specialist": "Dr House",
			"healthCheckRating": 2
		}`

		entry, err := UnmarshalEntry([]byte(payload))
		require.NoError(t, err)

		healthCheck, ok := entry.(*HealthCheckEntry)
		require.True(t, ok, "payload tagged HealthCheck should decode to HealthCheckEntry")
		assert.Equal(t, EntryTypeHealthCheck, entry.EntryType())
		assert.Equal(t, "entry-1", healthCheck.ID)
		assert.Equal(t, "Annual check", healthCheck.Description)
		assert.Equal(t, "2024-03-15", healthCheck.Date)
		assert.Equal(t, "Dr House", healthCheck.Specialist)
		assert.Equal(t, RatingHighRisk, healthCheck.HealthCheckRating)
	})

	t.Run("OccupationalHealthcare", func(t *testing.T) {
		payload := `{
			"type": "OccupationalHealthcare",
			"id": "entry-2",
			"description": "Workplace injury follow-up",
			"date": "2024-04-01",
			"specialist": "Dr Grey",
			"employerName": "FBI",
			"sickLeave": {"startDate": "2024-04-01", "endDate": "2024-04-07"},
			"diagnosisCodes": ["S62.5"]
		}`

		entry, err := UnmarshalEntry([]byte(payload))
		require.NoError(t, err)

		occupational, ok := entry.(*OccupationalHealthcareEntry)
		require.True(t, ok)
		assert.Equal(t, "FBI", occupational.EmployerName)
		require.NotNil(t, occupational.SickLeave)
		assert.Equal(t, "2024-04-01", occupational.SickLeave.StartDate)
		assert.Equal(t, "2024-04-07", occupational.SickLeave.EndDate)
		assert.Equal(t, []string{"S62.5"}, occupational.DiagnosisCodes)
	})

	t.Run("OccupationalHealthcare without sick leave", func(t *testing.T) {
		payload := `{
			"type": "OccupationalHealthcare",
			"description": "Routine screening",
			"date": "2024-04-02",
			"specialist": "Dr Grey",
			"employerName": "FBI"
		}`

		entry, err := UnmarshalEntry([]byte(payload))
		require.NoError(t, err)

		occupational, ok := entry.(*OccupationalHealthcareEntry)
		require.True(t, ok)
		assert.Nil(t, occupational.SickLeave, "absent sickLeave should stay nil, not zero-valued")
	})

	t.Run("Hospital", func(t *testing.T) {
		payload := `{
			"type": "Hospital",
			"id": "entry-3",
			"description": "Appendectomy",
			"date": "2024-05-10",
			"specialist": "Dr Bailey",
			"discharge": {"date": "2024-05-14", "criteria": "Wound healed"}
		}`

		entry, err := UnmarshalEntry([]byte(payload))
		require.NoError(t, err)

		hospital, ok := entry.(*HospitalEntry)
		require.True(t, ok)
		assert.Equal(t, "2024-05-14", hospital.Discharge.Date)
		assert.Equal(t, "Wound healed", hospital.Discharge.Criteria)
	})

	t.Run("unknown type tag", func(t *testing.T) {
		payload := `{"type": "Dental", "description": "Cavity", "date": "2024-01-01", "specialist": "Dr Teeth"}`

		entry, err := UnmarshalEntry([]byte(payload))
		assert.Nil(t, entry)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownEntryType)
	})

	t.Run("missing type tag", func(t *testing.T) {
		payload := `{"description": "No tag", "date": "2024-01-01", "specialist": "Dr Who"}`

		_, err := UnmarshalEntry([]byte(payload))
		assert.ErrorIs(t, err, ErrUnknownEntryType)
	})
}

func TestEntryMarshalInjectsTypeTag(t *testing.T) {
	for _, entryType := range AllEntryTypes {
		t.Run(string(entryType), func(t *testing.T) {
			probe, err := probeEntry(entryType)
			require.NoError(t, err)

			encoded, err := json.Marshal(probe)
			require.NoError(t, err)

			var tagged map[string]interface{}
			require.NoError(t, json.Unmarshal(encoded, &tagged))
			assert.Equal(t, string(entryType), tagged["type"])

			decoded, err := UnmarshalEntry(encoded)
			require.NoError(t, err)
			assert.Equal(t, entryType, decoded.EntryType())
		})
	}
}

func TestVerifyEntryDispatch(t *testing.T) {
	assert.NoError(t, VerifyEntryDispatch())
}

func TestVisitEntryDispatchesToMatchingMethod(t *testing.T) {
	entries := []Entry{
		&HealthCheckEntry{EntryBase: EntryBase{Description: "a"}},
		&OccupationalHealthcareEntry{EntryBase: EntryBase{Description: "b"}, EmployerName: "x"},
		&HospitalEntry{EntryBase: EntryBase{Description: "c"}},
	}

	for _, entry := range entries {
		counter := &dispatchCounter{}
		VisitEntry(entry, counter)
		assert.Equal(t, entry.EntryType(), counter.visited)
	}
}

func TestPatientEntriesUnmarshal(t *testing.T) {
	payload := `{
		"id": "patient-1",
		"name": "John McClane",
		"dateOfBirth": "1986-07-09",
		"ssn": "090786-122X",
		"gender": "male",
		"occupation": "New York cop",
		"entries": [
			{"type": "HealthCheck", "description": "Check", "date": "2024-01-01", "specialist": "Dr A", "healthCheckRating": 0},
			{"type": "Hospital", "description": "Surgery", "date": "2024-02-01", "specialist": "Dr B", "discharge": {"date": "2024-02-03", "criteria": "Recovered"}}
		]
	}`

	var patient Patient
	require.NoError(t, json.Unmarshal([]byte(payload), &patient))

	require.Len(t, patient.Entries, 2)
	assert.Equal(t, EntryTypeHealthCheck, patient.Entries[0].EntryType())
	assert.Equal(t, EntryTypeHospital, patient.Entries[1].EntryType())
	assert.Equal(t, "John McClane", patient.Name)
}

func TestPatientEntriesUnmarshalRejectsUnknownVariant(t *testing.T) {
	payload := `{
		"id": "patient-2",
		"name": "Jane Doe",
		"entries": [{"type": "Dental", "description": "Cavity", "date": "2024-01-01", "specialist": "Dr T"}]
	}`

	var patient Patient
	err := json.Unmarshal([]byte(payload), &patient)
	assert.ErrorIs(t, err, ErrUnknownEntryType)
}
