package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"tribook/models"
	"tribook/utils"
)

// SessionStore keeps booking sessions alive between hold and confirm.
type SessionStore interface {
	Save(ctx context.Context, session models.BookingSession) error
	// Load returns ErrSessionNotFound for a missing or expired session.
	Load(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Drop(ctx context.Context, sessionID string)
}

// redisSessionStore is the production SessionStore, keyed under the
// booking-session prefix with a TTL bounded by the hold window.
type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore wraps a Redis client as a SessionStore.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	key := utils.SessionCachePrefix + session.SessionID
	if err := s.client.Set(ctx, key, data, time.Until(session.ExpiresAt)).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Drop(ctx context.Context, sessionID string) {
	s.client.Del(ctx, utils.SessionCachePrefix+sessionID)
}
