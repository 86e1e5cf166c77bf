package redis

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error)
}
