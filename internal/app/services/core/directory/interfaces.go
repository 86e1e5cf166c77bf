package directory

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/responses"
)

type PrimarySearcher interface {
	SearchByName(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error)
	SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error)
}

type MirrorSearcher interface {
	SearchByName(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error)
	SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error)
}

type DirectoryUsecase interface {
	Search(ctx context.Context, fragment, field, confirmedName string) ([]responses.Suggestion, error)
}
