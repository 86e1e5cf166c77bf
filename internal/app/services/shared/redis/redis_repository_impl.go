package redis

import (
	"context"
	"intake-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrRedisSetValue(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSetValue(err)
	}
	return nil
}

// Get returns the raw stored value; a missing key yields an empty
// string with no error.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", exceptions.ErrRedisGetValue(err)
	}
	return value, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisSetValue(err)
	}
	return nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error) {
	acquired, err := r.client.SetNX(ctx, key, value, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSetValue(err)
	}
	return acquired, nil
}
