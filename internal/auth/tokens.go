package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound is returned when a token id is unknown or revoked.
var ErrTokenNotFound = errors.New("token not found")

// TokenStore remembers which issued tokens are still live. A signed token
// is only accepted while its id is present here.
type TokenStore interface {
	Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, tokenID string) (string, error)
	Revoke(ctx context.Context, tokenID string) error
}

// =============================
// In-process store
// =============================

type memoryTokenStore struct {
	cache *cache.Cache
}

// NewMemoryTokenStore keeps tokens in process memory.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{cache: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (s *memoryTokenStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	s.cache.Set(tokenID, userID, ttl)
	return nil
}

func (s *memoryTokenStore) Lookup(ctx context.Context, tokenID string) (string, error) {
	v, ok := s.cache.Get(tokenID)
	if !ok {
		return "", ErrTokenNotFound
	}
	return v.(string), nil
}

func (s *memoryTokenStore) Revoke(ctx context.Context, tokenID string) error {
	s.cache.Delete(tokenID)
	return nil
}

// =============================
// Redis store
// =============================

type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore keeps tokens in Redis so they survive restarts and are
// shared between replicas.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, sessionKey(tokenID), userID, ttl).Err()
}

func (s *redisTokenStore) Lookup(ctx context.Context, tokenID string) (string, error) {
	val, err := s.client.Get(ctx, sessionKey(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	return val, err
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, sessionKey(tokenID)).Err()
}

// NewTokenStore picks Redis when an address is configured, otherwise the
// in-process store.
func NewTokenStore(ctx context.Context, addr, password string, db int) (TokenStore, error) {
	if addr == "" {
		return NewMemoryTokenStore(), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedisTokenStore(client), nil
}
