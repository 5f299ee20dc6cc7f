package dto

// CreateCheckoutRequest starts a premium checkout for the given user.
type CreateCheckoutRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ConfirmCheckoutRequest confirms a checkout session after the redirect
// back from the provider.
type ConfirmCheckoutRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
