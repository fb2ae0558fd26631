package routers

import (
	"patientor-service/internal/app/services/core/diagnoses"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisRoutes(router chi.Router, diagnosisController *diagnoses.DiagnosisController) {
	router.Get("/", diagnosisController.GetCatalog)
}
