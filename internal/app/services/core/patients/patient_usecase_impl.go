package patients

import (
	"context"
	"errors"

	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/dto/requests"
	"patientor-service/internal/pkg/dto/responses"
	"patientor-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRecordClient contracts.PatientRecordClient
	DiagnosisUsecase    contracts.DiagnosisUsecase
	StatusService       contracts.StatusService
	Log                 *zap.Logger
}

func NewPatientUsecase(
	patientRecordClient contracts.PatientRecordClient,
	diagnosisUsecase contracts.DiagnosisUsecase,
	statusService contracts.StatusService,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRecordClient: patientRecordClient,
		DiagnosisUsecase:    diagnosisUsecase,
		StatusService:       statusService,
		Log:                 logger,
	}
}

func (uc *patientUsecase) GetPatientRecord(ctx context.Context, patientID string) (*responses.PatientRecord, error) {
	patient, err := uc.PatientRecordClient.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return PresentPatient(patient, uc.catalogOrEmpty(ctx)), nil
}

// CreateEntry is the submission pipeline: build the variant from the draft,
// hand it to the record API, and fold the authoritative server patient back
// into the response. A validation failure stops before anything is sent; a
// submission failure leaves the caller's draft fields untouched so the same
// request can be corrected and resubmitted.
func (uc *patientUsecase) CreateEntry(ctx context.Context, patientID string, request *requests.CreateEntryRequest) (*responses.PatientRecord, error) {
	draft := draftFromRequest(request)
	entry, validationErr := draft.Build()
	if validationErr != nil {
		uc.Log.Info("patientUsecase.CreateEntry draft rejected",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.String("field", validationErr.Field),
		)
		return nil, validationErr
	}

	updated, err := uc.PatientRecordClient.AddEntry(ctx, patientID, entry)
	if err != nil {
		uc.StatusService.Show(constvars.ResponseError, clientMessage(err))
		return nil, err
	}

	uc.StatusService.Show(constvars.ResponseSuccess, constvars.EntryAddedSuccess)
	return PresentPatient(updated, uc.catalogOrEmpty(ctx)), nil
}

// catalogOrEmpty tolerates an unavailable catalog: entries still render, with
// diagnosis codes unlabeled.
func (uc *patientUsecase) catalogOrEmpty(ctx context.Context) []models.Diagnosis {
	catalog, err := uc.DiagnosisUsecase.GetCatalog(ctx)
	if err != nil {
		uc.Log.Warn("patientUsecase catalog unavailable, rendering bare diagnosis codes", zap.Error(err))
		return nil
	}
	return catalog
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSubmissionFailed
}
