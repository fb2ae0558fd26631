package routers

import (
	"patientor-service/internal/app/services/shared/status"

	"github.com/go-chi/chi/v5"
)

func attachStatusRoutes(router chi.Router, statusController *status.StatusController) {
	router.Get("/", statusController.GetStatusBanner)
	router.Delete("/", statusController.ClearStatusBanner)
}
