package diagnoses

import (
	"context"
	"time"

	"patientor-service/internal/app/config"
	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type diagnosisUsecase struct {
	DiagnosisRecordClient contracts.DiagnosisRecordClient
	RedisRepository       contracts.RedisRepository
	CacheTTL              time.Duration
	Log                   *zap.Logger
}

func NewDiagnosisUsecase(
	diagnosisRecordClient contracts.DiagnosisRecordClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DiagnosisUsecase {
	return &diagnosisUsecase{
		DiagnosisRecordClient: diagnosisRecordClient,
		RedisRepository:       redisRepository,
		CacheTTL:              time.Duration(internalConfig.Catalog.CacheTTLInMinutes) * time.Minute,
		Log:                   logger,
	}
}

// GetCatalog serves the diagnosis code table, preferring the Redis copy.
// Cache problems only downgrade to an upstream fetch; an upstream failure is
// the only error a caller sees, and callers are expected to keep working with
// an empty catalog when it happens.
func (uc *diagnosisUsecase) GetCatalog(ctx context.Context) ([]models.Diagnosis, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.DiagnosisCatalogCacheKey)
	if err != nil {
		uc.Log.Warn("diagnosisUsecase.GetCatalog cache read failed", zap.Error(err))
	}
	if cached != "" {
		var catalog []models.Diagnosis
		if err := json.Unmarshal([]byte(cached), &catalog); err == nil {
			return catalog, nil
		}
		uc.Log.Warn("diagnosisUsecase.GetCatalog dropping undecodable cache entry")
		if err := uc.RedisRepository.Delete(ctx, constvars.DiagnosisCatalogCacheKey); err != nil {
			uc.Log.Warn("diagnosisUsecase.GetCatalog cache delete failed", zap.Error(err))
		}
	}

	catalog, err := uc.DiagnosisRecordClient.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, constvars.DiagnosisCatalogCacheKey, catalog, uc.CacheTTL); err != nil {
		uc.Log.Warn("diagnosisUsecase.GetCatalog cache write failed", zap.Error(err))
	}

	return catalog, nil
}
