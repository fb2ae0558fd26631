package routers

import (
	"patientor-service/internal/app/services/core/patients"
	"patientor-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Get("/{"+constvars.URLParamPatientID+"}", patientController.GetPatientRecord)
	router.Post("/{"+constvars.URLParamPatientID+"}/entries", patientController.CreateEntry)
}
