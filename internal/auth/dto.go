package auth

import "github.com/google/uuid"

// LoginRequest carries admin credentials plus the caller address used for
// rate limiting.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ClientIP string `json:"-"`
}

// AdminProfile is the authenticated admin returned alongside the token.
type AdminProfile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name,omitempty"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"`
	Admin       AdminProfile `json:"admin"`
}
