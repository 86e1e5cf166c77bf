package doctors

import (
	"context"
	"fmt"
	"intake-service/internal/app/models"
	sharedredis "intake-service/internal/app/services/shared/redis"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	Log        *zap.Logger
	Repository DoctorRepository
	Cache      sharedredis.RedisRepository
	CacheTTL   time.Duration
}

func NewDoctorUsecase(log *zap.Logger, repository DoctorRepository, cache sharedredis.RedisRepository, cacheTTLInSeconds int) DoctorUsecase {
	return &doctorUsecase{
		Log:        log,
		Repository: repository,
		Cache:      cache,
		CacheTTL:   time.Duration(cacheTTLInSeconds) * time.Second,
	}
}

// FindByID is a read-through cache over the doctor directory. Charge
// quoting recomputes on every form edit, so the hot lookup is served
// from redis. Cache failures degrade to the registry read.
func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyDoctorFormat, doctorID)

	cached, err := uc.Cache.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("doctor cache read failed",
			zap.String("doctor_id", doctorID),
			zap.Error(err),
		)
	} else if cached != "" {
		var doctor models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctor); err == nil {
			return &doctor, nil
		}
	}

	doctor, err := uc.Repository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, nil
	}

	if err := uc.Cache.Set(ctx, cacheKey, doctor, uc.CacheTTL); err != nil {
		uc.Log.Warn("doctor cache write failed",
			zap.String("doctor_id", doctorID),
			zap.Error(err),
		)
	}
	return doctor, nil
}

func (uc *doctorUsecase) List(ctx context.Context, specialist string) ([]responses.Doctor, error) {
	doctorList, err := uc.Repository.FindAll(ctx, specialist)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctorList))
	for _, doctor := range doctorList {
		result = append(result, responses.Doctor{
			ID:               doctor.ID,
			Name:             doctor.Name,
			Specialist:       doctor.Specialist,
			FirstVisitCharge: doctor.FirstVisitCharge,
			FollowUpCharge:   doctor.FollowUpCharge,
		})
	}
	return result, nil
}
