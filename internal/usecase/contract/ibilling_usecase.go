package contract

import "context"

// IBillingUseCase drives the premium checkout flow. ConfirmCheckout flips
// the user's premium flag only when the provider reports the session paid.
type IBillingUseCase interface {
	CreateCheckout(ctx context.Context, email string) (checkoutURL string, err error)
	ConfirmCheckout(ctx context.Context, sessionID string) (paid bool, err error)
}
