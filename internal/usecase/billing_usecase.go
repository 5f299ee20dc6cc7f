package usecase

import (
	"context"
	"fmt"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// BillingUsecase drives the premium subscription flow against the payment
// provider. The core consumes only the provider's paid signal; everything
// else about the session lifecycle stays behind the provider interface.
type BillingUsecase struct {
	userRepo contract.IUserRepository
	provider contract.IPaymentProvider
	logger   usecasecontract.IAppLogger
}

var _ usecasecontract.IBillingUseCase = (*BillingUsecase)(nil)

// NewBillingUsecase creates and returns a new BillingUsecase instance.
func NewBillingUsecase(userRepo contract.IUserRepository, provider contract.IPaymentProvider, logger usecasecontract.IAppLogger) *BillingUsecase {
	return &BillingUsecase{
		userRepo: userRepo,
		provider: provider,
		logger:   logger,
	}
}

// CreateCheckout resolves the user and asks the provider for a checkout URL.
func (u *BillingUsecase) CreateCheckout(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	url, err := u.provider.CreateSession(ctx, email, user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return url, nil
}

// ConfirmCheckout asks the provider whether the session was paid and, only
// then, flips the user's premium flag. An unknown or already-consumed
// session reports unpaid without touching the user.
func (u *BillingUsecase) ConfirmCheckout(ctx context.Context, sessionID string) (bool, error) {
	result, err := u.provider.ConfirmSession(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to confirm checkout session: %w", err)
	}
	if !result.Paid {
		return false, nil
	}
	if err := u.userRepo.SetPremium(ctx, result.UserID, true); err != nil {
		return false, fmt.Errorf("failed to activate premium: %w", err)
	}
	u.logger.Infof("premium activated for user %s", result.UserID)
	return true, nil
}
