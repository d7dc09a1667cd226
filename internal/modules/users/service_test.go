package users

import (
	"context"
	"errors"
	"testing"

	"chirpy/internal/domain"
	"chirpy/internal/pkg/auth"
	"chirpy/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) (*domain.User, error) {
	args := m.Called(ctx, id, email, hashedPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Run("hashes password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			ok, err := auth.CheckPasswordHash("04234567", u.HashedPassword)
			return err == nil && ok && u.Email == "walt@breakingbad.com"
		})).Return(nil).Once()

		user, err := NewService(repo).Register(context.Background(), CredentialsRequest{
			Email:    "walt@breakingbad.com",
			Password: "04234567",
		})

		require.NoError(t, err)
		assert.NotEqual(t, "04234567", user.HashedPassword)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := NewService(repo).Register(context.Background(), CredentialsRequest{
			Email:    "walt@breakingbad.com",
			Password: "04234567",
		})

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockUserRepo)
		dbErr := errors.New("database error")
		repo.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()

		_, err := NewService(repo).Register(context.Background(), CredentialsRequest{
			Email:    "walt@breakingbad.com",
			Password: "04234567",
		})

		assert.Equal(t, dbErr, err)
	})
}

func TestService_UpdateCredentials(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := new(mockUserRepo)
		updated := &domain.User{ID: id, Email: "heisenberg@breakingbad.com"}
		repo.On("UpdateCredentials", mock.Anything, id, "heisenberg@breakingbad.com", mock.AnythingOfType("string")).
			Return(updated, nil).Once()

		got, err := NewService(repo).UpdateCredentials(context.Background(), id, CredentialsRequest{
			Email:    "heisenberg@breakingbad.com",
			Password: "saymyname",
		})

		require.NoError(t, err)
		assert.Equal(t, updated, got)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("UpdateCredentials", mock.Anything, id, mock.Anything, mock.Anything).
			Return(nil, repository.ErrNotFound).Once()

		_, err := NewService(repo).UpdateCredentials(context.Background(), id, CredentialsRequest{
			Email:    "x@y.io",
			Password: "saymyname",
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("UpdateCredentials", mock.Anything, id, mock.Anything, mock.Anything).
			Return(nil, repository.ErrDuplicate).Once()

		_, err := NewService(repo).UpdateCredentials(context.Background(), id, CredentialsRequest{
			Email:    "x@y.io",
			Password: "saymyname",
		})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})
}
