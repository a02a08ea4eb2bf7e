package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/safevoice/report-service/internal/domain"
)

const principalKeyPrefix = "principal:"

// PrincipalCache keeps recently resolved accounts in Redis so principal
// resolution does not hit the database on every request. A nil cache is
// a valid no-op.
type PrincipalCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPrincipalCache builds a cache over the given client. Returns nil
// when the client is absent or the TTL disables caching.
func NewPrincipalCache(client *redis.Client, ttl time.Duration) *PrincipalCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &PrincipalCache{client: client, ttl: ttl}
}

// Get returns the cached account, or nil on miss or any cache failure.
// Cache failures are deliberately indistinguishable from misses; the
// caller falls through to the repository.
func (c *PrincipalCache) Get(ctx context.Context, userID string) *domain.User {
	if c == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, principalKeyPrefix+userID).Bytes()
	if err != nil {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	return &user
}

// Set stores the account for the configured TTL, ignoring cache errors.
func (c *PrincipalCache) Set(ctx context.Context, user *domain.User) {
	if c == nil || user == nil {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, principalKeyPrefix+user.ID, raw, c.ttl).Err()
}

// Invalidate drops the cached account, used after profile updates.
func (c *PrincipalCache) Invalidate(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, principalKeyPrefix+userID).Err()
}
