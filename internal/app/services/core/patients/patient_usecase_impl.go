package patients

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/core/identity"
	"intake-service/internal/app/services/core/registry"
	"intake-service/internal/app/services/shared/storage"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log            *zap.Logger
	Allocator      *identity.Allocator
	Registry       *registry.Mirror
	PrimaryRepo    PrimaryPatientRepository
	Storage        storage.Storage
	InternalConfig *config.InternalConfig
}

func NewPatientUsecase(
	log *zap.Logger,
	allocator *identity.Allocator,
	registryMirror *registry.Mirror,
	primaryRepo PrimaryPatientRepository,
	photoStorage storage.Storage,
	internalConfig *config.InternalConfig,
) PatientUsecase {
	return &patientUsecase{
		Log:            log,
		Allocator:      allocator,
		Registry:       registryMirror,
		PrimaryRepo:    primaryRepo,
		Storage:        photoStorage,
		InternalConfig: internalConfig,
	}
}

func (uc *patientUsecase) Register(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error) {
	resolution, err := uc.Allocator.Resolve(ctx, request.SelectedUHID)
	if err != nil {
		return nil, err
	}

	fields := models.PatientFields{
		Name:    request.Name,
		Phone:   request.Phone,
		Age:     request.Age,
		DOB:     request.DOB,
		Gender:  request.Gender,
		Address: request.Address,
	}

	if len(request.PhotoData) > 0 {
		objectName := utils.GeneratePhotoObjectName(resolution.UHID, request.PhotoExtension)
		fileName, err := uc.Storage.UploadImage(
			ctx,
			request.PhotoData,
			uc.InternalConfig.Minio.BucketName,
			objectName,
			request.PhotoExtension,
		)
		if err != nil {
			return nil, err
		}
		fields.PhotoObjectName = fileName
	}

	if err := uc.Registry.Upsert(ctx, resolution.UHID, fields, resolution.IsNew); err != nil {
		return nil, err
	}

	return &responses.RegisterPatient{
		UHID:  resolution.UHID,
		IsNew: resolution.IsNew,
	}, nil
}

func (uc *patientUsecase) GetByUHID(ctx context.Context, uhid string) (*responses.Patient, error) {
	record, err := uc.PrimaryRepo.FindByUHID(ctx, uhid)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	response := &responses.Patient{
		UHID:      record.ID,
		Name:      record.Name,
		Phone:     record.Phone,
		Age:       record.Age,
		DOB:       record.DOB,
		Gender:    record.Gender,
		Address:   record.Address,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}

	if record.PhotoObjectName != "" {
		expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLExpTimeInMinute) * time.Minute
		photoURL, err := uc.Storage.PresignedGetURL(ctx, uc.InternalConfig.Minio.BucketName, record.PhotoObjectName, expiry)
		if err != nil {
			uc.Log.Warn("failed to presign patient photo url",
				zap.String("uhid", record.ID),
				zap.Error(err),
			)
		} else {
			response.PhotoURL = photoURL
		}
	}

	return response, nil
}
