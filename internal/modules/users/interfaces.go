package users

import (
	"context"

	"chirpy/internal/domain"

	"github.com/google/uuid"
)

// UserRepositoryInterface is the subset of the user repository the service needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) (*domain.User, error)
}
