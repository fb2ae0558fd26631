package contracts

import (
	"context"

	"patientor-service/internal/app/models"
)

// DiagnosisRecordClient fetches the full diagnosis code table from the record
// API. The fetch is idempotent; each call returns the current catalog.
type DiagnosisRecordClient interface {
	FetchCatalog(ctx context.Context) ([]models.Diagnosis, error)
}

type DiagnosisUsecase interface {
	GetCatalog(ctx context.Context) ([]models.Diagnosis, error)
}
