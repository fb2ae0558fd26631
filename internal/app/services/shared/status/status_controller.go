package status

import (
	"net/http"
	"sync"

	"patientor-service/internal/app/contracts"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"
	"patientor-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type StatusController struct {
	Log           *zap.Logger
	StatusService contracts.StatusService
}

var (
	statusControllerInstance *StatusController
	onceStatusController     sync.Once
)

func NewStatusController(logger *zap.Logger, statusService contracts.StatusService) *StatusController {
	onceStatusController.Do(func() {
		instance := &StatusController{
			Log:           logger,
			StatusService: statusService,
		}
		statusControllerInstance = instance
	})
	return statusControllerInstance
}

func (ctrl *StatusController) GetStatusBanner(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	banner := ctrl.StatusService.Current()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatusBannerGetSuccess, banner)
}

func (ctrl *StatusController) ClearStatusBanner(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.StatusService.Clear()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatusBannerClearSuccess, nil)
}
