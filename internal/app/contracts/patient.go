package contracts

import (
	"context"

	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/dto/requests"
	"patientor-service/internal/pkg/dto/responses"
)

// PatientRecordClient is the narrow interface to the external record API that
// owns patient storage. AddEntry returns the updated patient with the new
// server-assigned entry appended; the server copy is authoritative.
type PatientRecordClient interface {
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	AddEntry(ctx context.Context, patientID string, entry models.Entry) (*models.Patient, error)
}

type PatientUsecase interface {
	GetPatientRecord(ctx context.Context, patientID string) (*responses.PatientRecord, error)
	CreateEntry(ctx context.Context, patientID string, request *requests.CreateEntryRequest) (*responses.PatientRecord, error)
}
