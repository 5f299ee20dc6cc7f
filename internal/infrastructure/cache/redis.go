package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL parses a redis:// URL and returns a connected client.
// A failed ping is fatal: the checkout flow cannot run without its session
// store.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to ping Redis: %v", err)
	}
	return rdb
}

// Close closes the client, logging instead of failing on error.
func Close(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Printf("failed to close Redis client: %v", err)
	}
}

// CheckoutSessionStore keeps pending checkout sessions in Redis under a TTL.
type CheckoutSessionStore struct {
	rdb *redis.Client
}

// NewCheckoutSessionStore creates a session store over the given client.
func NewCheckoutSessionStore(rdb *redis.Client) *CheckoutSessionStore {
	return &CheckoutSessionStore{rdb: rdb}
}

func sessionKey(sessionID string) string {
	return "checkout:session:" + sessionID
}

// Put stores the session payload under the given TTL.
func (s *CheckoutSessionStore) Put(ctx context.Context, sessionID string, payload []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(sessionID), payload, ttl).Err()
}

// Take atomically reads and removes a session. A missing or expired session
// returns ok=false without an error.
func (s *CheckoutSessionStore) Take(ctx context.Context, sessionID string) ([]byte, bool, error) {
	payload, err := s.rdb.GetDel(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}
