package routers

import (
	"intake-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Get("/suggestions", patientController.GetSuggestions)
	router.Post("/", patientController.RegisterPatient)
	router.Get("/{uhid}", patientController.GetPatientByUHID)
}
