package patients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	patientRecordClientInstance contracts.PatientRecordClient
	oncePatientRecordClient     sync.Once
)

type patientRecordClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPatientRecordClient(baseUrl string, logger *zap.Logger) contracts.PatientRecordClient {
	oncePatientRecordClient.Do(func() {
		client := &patientRecordClient{
			BaseUrl: baseUrl + "/patients",
			Log:     logger,
		}
		patientRecordClientInstance = client
	})
	return patientRecordClientInstance
}

func (c *patientRecordClient) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, patientID), nil)
	if err != nil {
		c.Log.Error("patientRecordClient.FindPatientByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.FindPatientByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s", patientID))
	}
	if resp.StatusCode != constvars.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		c.Log.Error("patientRecordClient.FindPatientByID record API error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGetRecordAPIResource(err, constvars.ResourcePatient)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("patientRecordClient.FindPatientByID error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGetRecordAPIResource(err, constvars.ResourcePatient)
	}

	patient := new(models.Patient)
	if err := json.Unmarshal(body, patient); err != nil {
		c.Log.Error("patientRecordClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeRecordAPIResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientRecordClient) AddEntry(ctx context.Context, patientID string, entry models.Entry) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRecordClient.AddEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingEntryTypeKey, string(entry.EntryType())),
	)

	requestJSON, err := json.Marshal(entry)
	if err != nil {
		c.Log.Error("patientRecordClient.AddEntry error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/%s/entries", c.BaseUrl, patientID), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientRecordClient.AddEntry error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRecordClient.AddEntry error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("patientRecordClient.AddEntry error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeRecordAPIResponse(err, constvars.ResourcePatient)
	}

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		message := upstreamErrorMessage(body)
		rejection := fmt.Errorf("status %d: %s", resp.StatusCode, message)
		c.Log.Error("patientRecordClient.AddEntry record API rejected entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(rejection),
		)
		return nil, exceptions.ErrSubmissionRejected(rejection, message)
	}

	patient := new(models.Patient)
	if err := json.Unmarshal(body, patient); err != nil {
		c.Log.Error("patientRecordClient.AddEntry error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeRecordAPIResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientRecordClient.AddEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

// upstreamErrorMessage pulls a human-readable message out of an error payload.
// The record API answers with either a JSON {error} object or a plain-text
// body.
func upstreamErrorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}
