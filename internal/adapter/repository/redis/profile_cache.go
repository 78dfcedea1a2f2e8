package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/ledgerexport/internal/domain"
)

// ProfileCache implements usecase.ProfileCache using Redis.
type ProfileCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewProfileCache creates a new ProfileCache whose entries live for ttl.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{
		client: client,
		prefix: "profile:",
		ttl:    ttl,
	}
}

// Get returns the cached profile of userID, or nil on a miss.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*domain.AccountProfile, error) {
	raw, err := c.client.Get(ctx, c.prefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile domain.AccountProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode cached profile %s: %w", userID, err)
	}
	return &profile, nil
}

// Set stores a profile.
func (c *ProfileCache) Set(ctx context.Context, profile *domain.AccountProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+profile.UserID, raw, c.ttl).Err()
}
