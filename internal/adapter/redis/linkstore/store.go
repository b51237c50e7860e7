// Package linkstore keeps short-lived account linking state in Redis: the
// OAuth anti-CSRF state and the pending manual verification challenge.
package linkstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// Connect parses url, opens a client and verifies it with PING.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("linkstore: parse url: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("linkstore: ping: %w", err)
	}

	return rdb, nil
}

// Store persists linking state with per-kind TTLs.
type Store struct {
	rdb          *redis.Client
	stateTTL     time.Duration
	challengeTTL time.Duration
}

// New creates a Store on an open client.
func New(rdb *redis.Client, stateTTL, challengeTTL time.Duration) *Store {
	return &Store{rdb: rdb, stateTTL: stateTTL, challengeTTL: challengeTTL}
}

// Ping reports whether Redis is reachable. It backs the readiness check.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("linkstore: ping: %w", err)
	}
	return nil
}

// SaveState stores the OAuth state for the account, replacing any earlier one.
func (s *Store) SaveState(ctx context.Context, accountID uuid.UUID, state string) error {
	if err := s.rdb.Set(ctx, stateKey(accountID), state, s.stateTTL).Err(); err != nil {
		return fmt.Errorf("linkstore: save state: %w", err)
	}
	return nil
}

// TakeState returns and deletes the stored OAuth state. A missing or expired
// state yields domain.ErrNotFound.
func (s *Store) TakeState(ctx context.Context, accountID uuid.UUID) (string, error) {
	state, err := s.rdb.GetDel(ctx, stateKey(accountID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("linkstore: state %s: %w", accountID, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("linkstore: take state: %w", err)
	}
	return state, nil
}

// SaveChallenge stores the pending manual challenge for its account.
func (s *Store) SaveChallenge(ctx context.Context, ch domain.LinkChallenge) error {
	b, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("linkstore: encode challenge: %w", err)
	}
	if err := s.rdb.Set(ctx, challengeKey(ch.AccountID), b, s.challengeTTL).Err(); err != nil {
		return fmt.Errorf("linkstore: save challenge: %w", err)
	}
	return nil
}

// GetChallenge returns the pending challenge. A missing or expired challenge
// yields domain.ErrNotFound.
func (s *Store) GetChallenge(ctx context.Context, accountID uuid.UUID) (*domain.LinkChallenge, error) {
	b, err := s.rdb.Get(ctx, challengeKey(accountID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("linkstore: challenge %s: %w", accountID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("linkstore: get challenge: %w", err)
	}

	var ch domain.LinkChallenge
	if err := json.Unmarshal(b, &ch); err != nil {
		return nil, fmt.Errorf("linkstore: decode challenge: %w", err)
	}
	return &ch, nil
}

// DeleteChallenge removes the pending challenge. Deleting a missing challenge is not an error.
func (s *Store) DeleteChallenge(ctx context.Context, accountID uuid.UUID) error {
	if err := s.rdb.Del(ctx, challengeKey(accountID)).Err(); err != nil {
		return fmt.Errorf("linkstore: delete challenge: %w", err)
	}
	return nil
}

func stateKey(accountID uuid.UUID) string {
	return fmt.Sprintf("link:state:%s", accountID)
}

func challengeKey(accountID uuid.UUID) string {
	return fmt.Sprintf("link:challenge:%s", accountID)
}
