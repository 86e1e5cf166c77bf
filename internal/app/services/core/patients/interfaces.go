package patients

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type PrimaryPatientRepository interface {
	Exists(ctx context.Context, uhid string) (bool, error)
	FindByUHID(ctx context.Context, uhid string) (*models.PrimaryPatientRecord, error)
	Insert(ctx context.Context, record *models.PrimaryPatientRecord) error
	MergeFields(ctx context.Context, uhid string, fields models.PatientFields) error
	SearchByName(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error)
	SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.PrimaryPatientRecord, error)
}

type MirrorPatientRepository interface {
	Upsert(ctx context.Context, record *models.MirrorPatientRecord) error
	SearchByName(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error)
	SearchByPhone(ctx context.Context, fragment string, limit int64) ([]models.MirrorPatientRecord, error)
}

type PatientUsecase interface {
	Register(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error)
	GetByUHID(ctx context.Context, uhid string) (*responses.Patient, error)
}
