package contract

import "context"

// PaymentResult is the outcome of confirming a checkout session.
type PaymentResult struct {
	Paid   bool
	UserID string
}

// IPaymentProvider is the payment orchestrator consumed by the billing flow.
// The core only acts on the confirmed signal; session lifecycle details stay
// behind this interface.
type IPaymentProvider interface {
	CreateSession(ctx context.Context, email, userID string) (checkoutURL string, err error)
	ConfirmSession(ctx context.Context, sessionID string) (PaymentResult, error)
}
