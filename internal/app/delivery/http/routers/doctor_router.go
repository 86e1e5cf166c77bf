package routers

import (
	"intake-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.ListDoctors)
	router.Get("/{doctor_id}/quote", doctorController.GetChargeQuote)
}
