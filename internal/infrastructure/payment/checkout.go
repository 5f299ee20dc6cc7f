package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/innercircle/lessons-api/internal/domain/contract"
)

// SessionStore persists pending checkout sessions. The Redis-backed
// implementation lives in infrastructure/cache.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, payload []byte, ttl time.Duration) error
	Take(ctx context.Context, sessionID string) (payload []byte, ok bool, err error)
}

// checkoutSession is the payload stored per pending session.
type checkoutSession struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// CheckoutService is the payment orchestrator. Creating a session mints an
// identifier and parks it in the store under a TTL; confirming consumes the
// session, so a pending session that is still present counts as paid and a
// second confirmation of the same identifier reports unpaid.
type CheckoutService struct {
	store   SessionStore
	baseURL string
	ttl     time.Duration
}

var _ contract.IPaymentProvider = (*CheckoutService)(nil)

// NewCheckoutService creates and returns a new CheckoutService instance.
func NewCheckoutService(store SessionStore, baseURL string, ttl time.Duration) *CheckoutService {
	return &CheckoutService{
		store:   store,
		baseURL: baseURL,
		ttl:     ttl,
	}
}

// CreateSession mints a checkout session for the user and returns the URL
// the client should be redirected to.
func (s *CheckoutService) CreateSession(ctx context.Context, email, userID string) (string, error) {
	sessionID := "cs_" + uuid.NewString()
	payload, err := json.Marshal(checkoutSession{Email: email, UserID: userID})
	if err != nil {
		return "", fmt.Errorf("failed to encode checkout session: %w", err)
	}
	if err := s.store.Put(ctx, sessionID, payload, s.ttl); err != nil {
		return "", fmt.Errorf("failed to store checkout session: %w", err)
	}
	return s.baseURL + "/checkout/" + sessionID, nil
}

// ConfirmSession consumes the session and reports whether it was paid.
// Unknown, expired and already-consumed sessions are unpaid, not errors.
func (s *CheckoutService) ConfirmSession(ctx context.Context, sessionID string) (contract.PaymentResult, error) {
	payload, ok, err := s.store.Take(ctx, sessionID)
	if err != nil {
		return contract.PaymentResult{}, fmt.Errorf("failed to load checkout session: %w", err)
	}
	if !ok {
		return contract.PaymentResult{Paid: false}, nil
	}
	var session checkoutSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return contract.PaymentResult{}, fmt.Errorf("failed to decode checkout session: %w", err)
	}
	return contract.PaymentResult{Paid: true, UserID: session.UserID}, nil
}
