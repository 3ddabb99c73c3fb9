package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisStore keeps one key per revoked token and lets Redis expire it.
type RedisStore struct {
	client rueidis.Client
	prefix string
	now    func() time.Time
}

func NewRedisStore(client rueidis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
		now:    time.Now,
	}
}

func (r *RedisStore) key(tokenID string) string {
	return r.prefix + tokenID
}

func (r *RedisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !expiresAt.After(r.now()) {
		return nil
	}

	cmd := r.client.B().Set().Key(r.key(tokenID)).Value("1").Exat(expiresAt).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("revoke token in redis: %w", err)
	}

	return nil
}

func (r *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	cmd := r.client.B().Exists().Key(r.key(tokenID)).Build()
	n, err := r.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, fmt.Errorf("check revoked token in redis: %w", err)
	}

	return n > 0, nil
}
