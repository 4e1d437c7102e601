package dto

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	Gender           string   `json:"gender"`
	Avatar           string   `json:"avatar"`
	Password         string   `json:"password"`
	VerifiedPassword string   `json:"verifiedPassword"`
	Permissions      []string `json:"permissions"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token being exchanged.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest is the payload for the password-change protocol.
// UserID comes from the path, not the body.
type ChangePasswordRequest struct {
	UserID              string `json:"-"`
	CurrentPassword     string `json:"currentPassword"`
	NewPassword         string `json:"newPassword"`
	VerifiedNewPassword string `json:"verifiedNewPassword"`
}
