package users

import (
	"context"
	"errors"

	"chirpy/internal/domain"
	"chirpy/internal/pkg/auth"
	"chirpy/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, req CredentialsRequest) (*domain.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          req.Email,
		HashedPassword: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// UpdateCredentials re-hashes the password and replaces email and password of
// userID.
func (s *Service) UpdateCredentials(ctx context.Context, userID uuid.UUID, req CredentialsRequest) (*domain.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateCredentials(ctx, userID, req.Email, hash)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailAlreadyExists
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
