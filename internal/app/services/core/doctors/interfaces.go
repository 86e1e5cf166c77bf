package doctors

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context, specialist string) ([]models.Doctor, error)
}

// DoctorUsecase also serves as the already-loaded directory the charge
// resolver quotes against.
type DoctorUsecase interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	List(ctx context.Context, specialist string) ([]responses.Doctor, error)
}
