package locker

import (
	"context"
	"fmt"
	sharedredis "intake-service/internal/app/services/shared/redis"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}

type lockService struct {
	redisRepo sharedredis.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo sharedredis.RedisRepository, logger *zap.Logger) LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		return false, "", nil
	}

	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}

	if storedVal == "" {
		// Lock already expired.
		return nil
	}

	if storedVal != lockValue {
		err := fmt.Errorf("lock not owned by this client")
		s.Log.Error("lockService.Unlock lock ownership mismatch",
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	return s.redisRepo.Delete(ctx, key)
}
