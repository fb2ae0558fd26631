package diagnoses

import (
	"context"
	"net/http"
	"sync"
	"time"

	"patientor-service/internal/app/contracts"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/dto/responses"
	"patientor-service/internal/pkg/exceptions"
	"patientor-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DiagnosisController struct {
	Log              *zap.Logger
	DiagnosisUsecase contracts.DiagnosisUsecase
	RequestTimeout   time.Duration
}

var (
	diagnosisControllerInstance *DiagnosisController
	onceDiagnosisController     sync.Once
)

func NewDiagnosisController(logger *zap.Logger, diagnosisUsecase contracts.DiagnosisUsecase, requestTimeout time.Duration) *DiagnosisController {
	onceDiagnosisController.Do(func() {
		instance := &DiagnosisController{
			Log:              logger,
			DiagnosisUsecase: diagnosisUsecase,
			RequestTimeout:   requestTimeout,
		}
		diagnosisControllerInstance = instance
	})
	return diagnosisControllerInstance
}

func (ctrl *DiagnosisController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	catalog, err := ctrl.DiagnosisUsecase.GetCatalog(ctx)
	if err != nil {
		ctrl.Log.Error("Failed to get diagnosis catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := make([]responses.Diagnosis, 0, len(catalog))
	for _, diagnosis := range catalog {
		response = append(response, responses.Diagnosis{Code: diagnosis.Code, Name: diagnosis.Name})
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiagnosisCatalogSuccess, response)
}
