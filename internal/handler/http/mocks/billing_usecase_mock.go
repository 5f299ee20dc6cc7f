package mocks

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// MockBillingUsecase is a mock implementation of the billing usecase interface
type MockBillingUsecase struct {
	// Control mock behavior
	ShouldFailCreateCheckout  bool
	ShouldFailConfirmCheckout bool

	// ConfirmUnpaid makes ConfirmCheckout report the session as unpaid.
	ConfirmUnpaid bool

	// Return values
	MockCheckoutURL string
}

// Ensure MockBillingUsecase implements the correct interface for handler.NewBillingHandler
var _ usecasecontract.IBillingUseCase = (*MockBillingUsecase)(nil)

func NewMockBillingUsecase() *MockBillingUsecase {
	return &MockBillingUsecase{
		MockCheckoutURL: "http://localhost:8080/checkout/cs_mock",
	}
}

func (m *MockBillingUsecase) CreateCheckout(ctx context.Context, email string) (string, error) {
	if m.ShouldFailCreateCheckout {
		return "", contract.ErrUserNotFound
	}
	return m.MockCheckoutURL, nil
}

func (m *MockBillingUsecase) ConfirmCheckout(ctx context.Context, sessionID string) (bool, error) {
	if m.ShouldFailConfirmCheckout {
		return false, contract.ErrUserNotFound
	}
	return !m.ConfirmUnpaid, nil
}
