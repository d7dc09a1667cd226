package auth

import "chirpy/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// ExpiresInSeconds is capped at the configured access token TTL.
	ExpiresInSeconds *int `json:"expiresInSeconds,omitempty"`
}

type LoginResponse struct {
	domain.User
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	Token string `json:"token"`
}
