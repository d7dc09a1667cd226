package auth

import (
	"context"
	"time"

	"chirpy/internal/domain"

	"github.com/google/uuid"
)

// UserRepositoryInterface: lookup by email only.
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RefreshTokenRepositoryInterface stores refresh tokens.
type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	GetUserByActiveToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	Revoke(ctx context.Context, token string, now time.Time) error
}

type jwtService interface {
	GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error)
}
