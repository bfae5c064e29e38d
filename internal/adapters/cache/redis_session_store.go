package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petitpas/storefront/internal/domain"
)

func sessionKey(sessionID string) string { return "sf:session:" + sessionID }
func cartSeqKey(sessionID string) string { return "sf:session:" + sessionID + ":cartseq" }

// setCartIfLatest writes the remembered cart handle only when the supplied
// sequence is at least as new as the stored one. Running as a script makes
// the compare-and-set atomic across concurrent add-to-cart completions.
var setCartIfLatest = redis.NewScript(`
local stored = tonumber(redis.call('HGET', KEYS[1], 'cart_seq') or '0')
local seq = tonumber(ARGV[2])
if seq < stored then
	return 0
end
redis.call('HSET', KEYS[1], 'cart_id', ARGV[1], 'cart_seq', ARGV[2])
redis.call('EXPIRE', KEYS[1], ARGV[3])
return 1
`)

// RedisSessionStore implements per-visitor session state in Redis hashes.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (domain.SessionRecord, error) {
	data, err := s.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return domain.SessionRecord{}, err
	}

	record := domain.SessionRecord{
		AccessToken: data["access_token"],
		Currency:    data["currency"],
		CartID:      data["cart_id"],
	}
	if raw, ok := data["cart_seq"]; ok {
		if n, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil {
			record.CartSeq = n
		}
	}
	return record, nil
}

func (s *RedisSessionStore) SetAccessToken(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	key := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, "access_token", token)
		p.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (s *RedisSessionStore) ClearAccessToken(ctx context.Context, sessionID string) error {
	return s.client.HDel(ctx, sessionKey(sessionID), "access_token").Err()
}

func (s *RedisSessionStore) SetCurrency(ctx context.Context, sessionID, currency string, ttl time.Duration) error {
	key := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, "currency", currency)
		p.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (s *RedisSessionStore) NextCartSeq(ctx context.Context, sessionID string) (int64, error) {
	key := cartSeqKey(sessionID)
	seq, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// The counter only needs to outlive the session hash.
	_ = s.client.Expire(ctx, key, 30*24*time.Hour).Err()
	return seq, nil
}

func (s *RedisSessionStore) SetCartIfLatest(ctx context.Context, sessionID, cartID string, seq int64, ttl time.Duration) (bool, error) {
	res, err := setCartIfLatest.Run(ctx, s.client,
		[]string{sessionKey(sessionID)},
		cartID, seq, int(ttl.Seconds()),
	).Int64()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

func (s *RedisSessionStore) ClearCart(ctx context.Context, sessionID string) error {
	return s.client.HDel(ctx, sessionKey(sessionID), "cart_id", "cart_seq").Err()
}
