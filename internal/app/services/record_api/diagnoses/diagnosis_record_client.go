package diagnoses

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	diagnosisRecordClientInstance contracts.DiagnosisRecordClient
	onceDiagnosisRecordClient     sync.Once
)

type diagnosisRecordClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewDiagnosisRecordClient(baseUrl string, logger *zap.Logger) contracts.DiagnosisRecordClient {
	onceDiagnosisRecordClient.Do(func() {
		client := &diagnosisRecordClient{
			BaseUrl: baseUrl + "/diagnoses",
			Log:     logger,
		}
		diagnosisRecordClientInstance = client
	})
	return diagnosisRecordClientInstance
}

func (c *diagnosisRecordClient) FetchCatalog(ctx context.Context) ([]models.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("diagnosisRecordClient.FetchCatalog called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("diagnosisRecordClient.FetchCatalog error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("diagnosisRecordClient.FetchCatalog error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCatalogUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		c.Log.Error("diagnosisRecordClient.FetchCatalog record API error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCatalogUnavailable(err)
	}

	var catalog []models.Diagnosis
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		c.Log.Error("diagnosisRecordClient.FetchCatalog error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeRecordAPIResponse(err, constvars.ResourceDiagnosis)
	}

	c.Log.Info("diagnosisRecordClient.FetchCatalog succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("catalog_size", len(catalog)),
	)
	return catalog, nil
}
