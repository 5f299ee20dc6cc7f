package dto

// RegisterUserRequest is the registration payload.
type RegisterUserRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}

// UpdateProfileRequest overwrites profile fields as given; empty values are
// accepted and stored.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
}

// SetRoleRequest overwrites a user's role. The value is stored as sent.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetPremiumRequest overwrites a user's premium flag.
type SetPremiumRequest struct {
	IsPremium *bool `json:"isPremium" binding:"required"`
}
