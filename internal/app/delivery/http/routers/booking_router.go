package routers

import (
	"intake-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *bookings.BookingController) {
	router.Post("/{modality}", bookingController.CreateBooking)
}

func attachPaymentRoutes(router chi.Router, bookingController *bookings.BookingController) {
	router.Post("/preview", bookingController.PreviewPayment)
}
