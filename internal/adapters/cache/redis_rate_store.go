package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/petitpas/storefront/internal/domain"
)

const rateKey = "fx:rates"

// RedisRateStore persists the exchange-rate snapshot between runs so a warm
// restart inside the staleness window needs no provider call.
type RedisRateStore struct {
	client *redis.Client
}

func NewRedisRateStore(client *redis.Client) *RedisRateStore {
	return &RedisRateStore{client: client}
}

func (s *RedisRateStore) Load(ctx context.Context) (domain.RateSnapshot, error) {
	raw, err := s.client.Get(ctx, rateKey).Result()
	if errors.Is(err, redis.Nil) {
		return domain.RateSnapshot{}, nil
	}
	if err != nil {
		return domain.RateSnapshot{}, err
	}

	var snapshot domain.RateSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		// A corrupt snapshot is the same as no snapshot.
		return domain.RateSnapshot{}, nil
	}
	return snapshot, nil
}

func (s *RedisRateStore) Save(ctx context.Context, snapshot domain.RateSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, rateKey, raw, 0).Err()
}
