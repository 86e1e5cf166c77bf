package bookings

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

// LedgerRepository appends immutable visit entries under a resolved
// patient identity, one collection per modality.
type LedgerRepository interface {
	Append(ctx context.Context, entry *models.AppointmentEntry) (string, error)
}

type BookingUsecase interface {
	Submit(ctx context.Context, modality string, request *requests.CreateBooking) (*responses.CreateBooking, error)
	PreviewPayment(ctx context.Context, request *requests.PaymentPreview) (*responses.PaymentPreview, error)
}
