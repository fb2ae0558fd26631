package diagnoses

import (
	"context"
	"testing"
	"time"

	"patientor-service/internal/app/config"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDiagnosisRecordClient struct {
	catalog []models.Diagnosis
	err     error
	calls   int
}

func (c *fakeDiagnosisRecordClient) FetchCatalog(ctx context.Context) ([]models.Diagnosis, error) {
	c.calls++
	return c.catalog, c.err
}

type fakeRedisRepository struct {
	values  map[string]string
	getErr  error
	setErr  error
	setTTLs []time.Duration
	deleted []string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if r.setErr != nil {
		return r.setErr
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(encoded)
	r.setTTLs = append(r.setTTLs, exp)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if r.getErr != nil {
		return "", r.getErr
	}
	return r.values[key], nil
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	r.deleted = append(r.deleted, key)
	return nil
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Catalog: config.Catalog{CacheTTLInMinutes: 15},
	}
}

var testCatalog = []models.Diagnosis{
	{Code: "J10", Name: "Influenza"},
	{Code: "M24.2", Name: "Disorder of ligament"},
}

func TestDiagnosisUsecaseGetCatalog(t *testing.T) {
	t.Run("cache miss fetches upstream and fills the cache", func(t *testing.T) {
		client := &fakeDiagnosisRecordClient{catalog: testCatalog}
		cache := newFakeRedisRepository()
		usecase := NewDiagnosisUsecase(client, cache, testConfig(), zap.NewNop())

		catalog, err := usecase.GetCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testCatalog, catalog)
		assert.Equal(t, 1, client.calls)

		require.Len(t, cache.setTTLs, 1)
		assert.Equal(t, 15*time.Minute, cache.setTTLs[0])
		assert.Contains(t, cache.values, constvars.DiagnosisCatalogCacheKey)
	})

	t.Run("cache hit skips the upstream", func(t *testing.T) {
		client := &fakeDiagnosisRecordClient{catalog: testCatalog}
		cache := newFakeRedisRepository()
		usecase := NewDiagnosisUsecase(client, cache, testConfig(), zap.NewNop())

		_, err := usecase.GetCatalog(context.Background())
		require.NoError(t, err)

		catalog, err := usecase.GetCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testCatalog, catalog)
		assert.Equal(t, 1, client.calls, "second read must come from the cache")
	})

	t.Run("undecodable cache entry is dropped and refetched", func(t *testing.T) {
		client := &fakeDiagnosisRecordClient{catalog: testCatalog}
		cache := newFakeRedisRepository()
		cache.values[constvars.DiagnosisCatalogCacheKey] = "{not json"
		usecase := NewDiagnosisUsecase(client, cache, testConfig(), zap.NewNop())

		catalog, err := usecase.GetCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testCatalog, catalog)
		assert.Equal(t, 1, client.calls)
		assert.Contains(t, cache.deleted, constvars.DiagnosisCatalogCacheKey)
	})

	t.Run("cache read failure degrades to an upstream fetch", func(t *testing.T) {
		client := &fakeDiagnosisRecordClient{catalog: testCatalog}
		cache := newFakeRedisRepository()
		cache.getErr = exceptions.ErrRedisGet(nil)
		usecase := NewDiagnosisUsecase(client, cache, testConfig(), zap.NewNop())

		catalog, err := usecase.GetCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testCatalog, catalog)
	})

	t.Run("upstream failure surfaces as catalog unavailable", func(t *testing.T) {
		client := &fakeDiagnosisRecordClient{err: exceptions.ErrCatalogUnavailable(nil)}
		cache := newFakeRedisRepository()
		usecase := NewDiagnosisUsecase(client, cache, testConfig(), zap.NewNop())

		catalog, err := usecase.GetCatalog(context.Background())
		assert.Nil(t, catalog)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})

	t.Run("cache write failure does not fail the call", func(t *testing.T) {
		client := &fakeDiagnosisRecordClient{catalog: testCatalog}
		cache := newFakeRedisRepository()
		cache.setErr = exceptions.ErrRedisSet(nil)
		usecase := NewDiagnosisUsecase(client, cache, testConfig(), zap.NewNop())

		catalog, err := usecase.GetCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testCatalog, catalog)
	})
}
