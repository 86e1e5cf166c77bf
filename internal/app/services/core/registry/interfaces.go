package registry

import (
	"context"
	"intake-service/internal/app/models"
	"time"
)

type PrimaryWriter interface {
	Insert(ctx context.Context, record *models.PrimaryPatientRecord) error
	MergeFields(ctx context.Context, uhid string, fields models.PatientFields) error
}

type MirrorWriter interface {
	Upsert(ctx context.Context, record *models.MirrorPatientRecord) error
}

type IntentRepository interface {
	Create(ctx context.Context, intent *models.MirrorIntent) error
	FindByID(ctx context.Context, id string) (*models.MirrorIntent, error)
	FindPending(ctx context.Context, olderThan time.Time, limit int64) ([]models.MirrorIntent, error)
	MarkComplete(ctx context.Context, id string) error
	IncrementAttempts(ctx context.Context, id string) error
}

// IntentQueue hands an intent id to the reconciliation worker without
// waiting for the next sweep.
type IntentQueue interface {
	PublishIntent(ctx context.Context, intentID string) error
}
