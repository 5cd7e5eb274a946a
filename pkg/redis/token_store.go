package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"eathub.backend/pkg/crypto"
)

var (
	ErrTokenNotFound = errors.New("auth token not found")
	ErrTokenMismatch = errors.New("auth token mismatch")
)

const tokenKeyPrefix = "user_token:"

// TokenStore keeps one opaque auth token per user in Redis, mirroring the
// cache-backed session tokens the platform issues at login.
type TokenStore struct {
	ttl time.Duration
}

// NewTokenStore creates a token store with the given token lifetime.
func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{ttl: ttl}
}

// Issue generates a fresh token for the user and stores it with the
// configured TTL. Any previously issued token is replaced.
func (s *TokenStore) Issue(ctx context.Context, userID string) (string, error) {
	token, err := crypto.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	if err := Set(ctx, tokenKeyPrefix+userID, token, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Validate checks that the presented token matches the stored one.
func (s *TokenStore) Validate(ctx context.Context, userID, token string) error {
	stored, err := Get(ctx, tokenKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrTokenNotFound
		}
		return err
	}
	if stored != token {
		return ErrTokenMismatch
	}
	return nil
}

// Revoke deletes the user's token, ending the session.
func (s *TokenStore) Revoke(ctx context.Context, userID string) error {
	return Del(ctx, tokenKeyPrefix+userID)
}
