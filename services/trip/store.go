// File: services/trip/store.go
package trip

import (
	"context"
	"encoding/json"
	"time"

	"wayfare/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "trip:session:"

// RedisSessionStore persists conversation sessions with a TTL. A missing
// key yields a fresh idle session rather than an error.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.TripSession, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewTripSession(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.TripSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sess *models.TripSession) error {
	key := sessionPrefix + sess.ID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	key := sessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
