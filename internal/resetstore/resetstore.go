package resetstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store tracks password-reset tokens by jti so each one is good for
// exactly one reset. Save is called when the token is issued, Consume
// when it is redeemed; a second redeem finds nothing and fails.
type Store interface {
	Save(ctx context.Context, jti string, ttl time.Duration) error
	Consume(ctx context.Context, jti string) (bool, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func key(jti string) string {
	return "reset:" + jti
}

func (s *RedisStore) Save(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, key(jti), "1", ttl).Err()
}

func (s *RedisStore) Consume(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Del(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
