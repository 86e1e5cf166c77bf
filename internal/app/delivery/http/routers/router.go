package routers

import (
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/bookings"
	"intake-service/internal/app/services/core/doctors"
	"intake-service/internal/app/services/core/patients"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	doctorController *doctors.DoctorController,
	bookingController *bookings.BookingController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, middlewares.RequestLog))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, doctorController)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, bookingController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, bookingController)
			})
		})
	})
}
