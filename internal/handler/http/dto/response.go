package dto

import "github.com/innercircle/lessons-api/internal/domain/entity"

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterResponse carries the stored user back to the caller. Registering
// an email that already exists is success-shaped: the message says so and
// the existing document is returned.
type RegisterResponse struct {
	Message string       `json:"message,omitempty"`
	User    *entity.User `json:"user"`
}

// RoleResponse is the payload of the role lookup.
type RoleResponse struct {
	Role entity.UserRole `json:"role"`
}

// DeletedResponse reports how many documents a bulk delete removed.
type DeletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// CheckoutResponse carries the provider's checkout URL.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// ConfirmResponse reports the outcome of a checkout confirmation.
type ConfirmResponse struct {
	Paid bool `json:"paid"`
}
