package redis

import (
	"context"
	"time"

	"healthcamp-service/internal/app/contracts"
)

// noopRepository stands in when no Redis host is configured; every read is a miss.
type noopRepository struct{}

func NewNoopRepository() contracts.RedisRepository {
	return noopRepository{}
}

func (noopRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func (noopRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (noopRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}
