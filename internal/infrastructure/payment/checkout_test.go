package payment_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/innercircle/lessons-api/internal/infrastructure/payment"
	"github.com/stretchr/testify/assert"
)

// mapSessionStore is an in-memory stand-in for the Redis-backed store.
type mapSessionStore struct {
	sessions map[string][]byte
	lastTTL  time.Duration
}

func newMapSessionStore() *mapSessionStore {
	return &mapSessionStore{sessions: map[string][]byte{}}
}

func (s *mapSessionStore) Put(ctx context.Context, sessionID string, payload []byte, ttl time.Duration) error {
	s.sessions[sessionID] = payload
	s.lastTTL = ttl
	return nil
}

func (s *mapSessionStore) Take(ctx context.Context, sessionID string) ([]byte, bool, error) {
	payload, ok := s.sessions[sessionID]
	if !ok {
		return nil, false, nil
	}
	delete(s.sessions, sessionID)
	return payload, true, nil
}

func TestCreateSession(t *testing.T) {
	store := newMapSessionStore()
	svc := payment.NewCheckoutService(store, "http://localhost:8080", time.Hour)

	url, err := svc.CreateSession(context.Background(), "a@example.com", "user-1")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/checkout/cs_"))
	assert.Len(t, store.sessions, 1)
	assert.Equal(t, time.Hour, store.lastTTL)
}

func TestConfirmSession_PendingSessionIsPaid(t *testing.T) {
	store := newMapSessionStore()
	svc := payment.NewCheckoutService(store, "http://localhost:8080", time.Hour)

	url, err := svc.CreateSession(context.Background(), "a@example.com", "user-1")
	assert.NoError(t, err)
	sessionID := url[strings.LastIndex(url, "/")+1:]

	result, err := svc.ConfirmSession(context.Background(), sessionID)

	assert.NoError(t, err)
	assert.True(t, result.Paid)
	assert.Equal(t, "user-1", result.UserID)
}

func TestConfirmSession_SecondConfirmationIsUnpaid(t *testing.T) {
	store := newMapSessionStore()
	svc := payment.NewCheckoutService(store, "http://localhost:8080", time.Hour)

	url, _ := svc.CreateSession(context.Background(), "a@example.com", "user-1")
	sessionID := url[strings.LastIndex(url, "/")+1:]

	first, err := svc.ConfirmSession(context.Background(), sessionID)
	assert.NoError(t, err)
	assert.True(t, first.Paid)

	second, err := svc.ConfirmSession(context.Background(), sessionID)
	assert.NoError(t, err)
	assert.False(t, second.Paid)
}

func TestConfirmSession_UnknownSessionIsUnpaid(t *testing.T) {
	svc := payment.NewCheckoutService(newMapSessionStore(), "http://localhost:8080", time.Hour)

	result, err := svc.ConfirmSession(context.Background(), "cs_never_created")

	assert.NoError(t, err)
	assert.False(t, result.Paid)
	assert.Empty(t, result.UserID)
}
