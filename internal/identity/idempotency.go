package identity

import (
	"context"
	"fmt"
	"time"

	platformredis "touchline/internal/platform/redis"
)

const keyTTL = 24 * time.Hour

// KeyRegistry keeps a short-lived record of issued provisioning idempotency
// keys in Redis, keyed for operator lookup when a conversion needs manual
// reconciliation against the provider.
type KeyRegistry struct {
	redis *platformredis.Client
}

func NewKeyRegistry(redis *platformredis.Client) *KeyRegistry {
	if redis == nil {
		return nil
	}
	return &KeyRegistry{redis: redis}
}

// Record stores the attempt key against the username it provisioned.
func (r *KeyRegistry) Record(ctx context.Context, attemptKey, username string) error {
	if err := r.redis.Set(ctx, "identity:attempt:"+attemptKey, username, keyTTL).Err(); err != nil {
		return fmt.Errorf("record provisioning attempt: %w", err)
	}
	return nil
}

// Lookup returns the username a provisioning attempt key was issued for,
// or empty if it expired or never existed.
func (r *KeyRegistry) Lookup(ctx context.Context, attemptKey string) (string, error) {
	val, err := r.redis.Get(ctx, "identity:attempt:"+attemptKey).Result()
	if err != nil {
		if err == platformredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("lookup provisioning attempt: %w", err)
	}
	return val, nil
}
