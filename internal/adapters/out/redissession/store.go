// Package redissession implements the session store on Redis. Sessions are
// opaque random tokens mapped to the authenticated actor, expiring via the
// key TTL so logout is a delete and idle sessions clean themselves up.
package redissession

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix      = "session:"
	tokenByteCount = 32
)

type sessionData struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Store implements ports.SessionStore on a Redis client.
type Store struct {
	rdb *redis.Client
}

// NewStore creates a session store and verifies the connection.
func NewStore(ctx context.Context, redisURL string) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err = rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Store{rdb: rdb}, nil
}

// Issue stores a new session for the actor and returns its opaque token.
func (s *Store) Issue(ctx context.Context, actor account.Actor, ttl time.Duration) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	raw := make([]byte, tokenByteCount)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)

	payload, err := json.Marshal(sessionData{
		UserID: actor.ID().String(),
		Role:   actor.Role().String(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal session data: %w", err)
	}

	if err = s.rdb.Set(ctx, keyPrefix+token, payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Resolve returns the actor for a token. Unknown and expired tokens are
// indistinguishable; both map to errs.ObjectNotFoundError.
func (s *Store) Resolve(ctx context.Context, token string) (account.Actor, error) {
	if token == "" {
		return account.Actor{}, errs.NewValueIsRequiredError("session token")
	}

	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return account.Actor{}, errs.NewObjectNotFoundError("session", token)
		}
		return account.Actor{}, fmt.Errorf("get session: %w", err)
	}

	var data sessionData
	if err = json.Unmarshal([]byte(val), &data); err != nil {
		return account.Actor{}, fmt.Errorf("unmarshal session data: %w", err)
	}

	userID, err := kernel.UUIDFromString(data.UserID)
	if err != nil {
		return account.Actor{}, err
	}

	role, err := account.RoleFromString(data.Role)
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(userID, role)
}

// Revoke deletes a session. Revoking an unknown token is a no-op.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// Close releases the underlying Redis connection.
func (s *Store) Close() error {
	return s.rdb.Close()
}
