package auth

import (
	"context"
	"errors"
	"time"

	"chirpy/internal/domain"
	creds "chirpy/internal/pkg/auth"
	"chirpy/internal/repository"
)

// Service contains all business logic for authentication
type Service struct {
	users      UserRepositoryInterface
	tokens     RefreshTokenRepositoryInterface
	jwt        jwtService
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(
	users UserRepositoryInterface,
	tokens RefreshTokenRepositoryInterface,
	jwt jwtService,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		jwt:        jwt,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AccessTTL returns the lifetime of a login access token. Requests outside
// (0, accessTTL] get the maximum.
func (s *Service) AccessTTL(expiresInSeconds *int) time.Duration {
	if expiresInSeconds == nil || *expiresInSeconds <= 0 {
		return s.accessTTL
	}
	requested := time.Duration(*expiresInSeconds) * time.Second
	if requested > s.accessTTL {
		return s.accessTTL
	}
	return requested
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := creds.CheckPasswordHash(req.Password, user.HashedPassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, s.AccessTTL(req.ExpiresInSeconds))
	if err != nil {
		return nil, err
	}

	refreshRaw, err := creds.MakeRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Create(ctx, &domain.RefreshToken{
		Token:     refreshRaw,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.refreshTTL),
	}); err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: accessToken, RefreshToken: refreshRaw}, nil
}

// Refresh mints a new access token for the owner of an active refresh token.
// The refresh token itself is not rotated.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (string, error) {
	user, err := s.tokens.GetUserByActiveToken(ctx, refreshRaw, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}
	return s.jwt.GenerateToken(user.ID, s.accessTTL)
}

// Revoke invalidates an active refresh token. Unknown, expired and already
// revoked tokens all report ErrInvalidRefreshToken.
func (s *Service) Revoke(ctx context.Context, refreshRaw string) error {
	now := s.now()

	stored, err := s.tokens.GetByToken(ctx, refreshRaw)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	if !stored.IsActive(now) {
		return ErrInvalidRefreshToken
	}

	// the update re-checks both conditions
	if err := s.tokens.Revoke(ctx, refreshRaw, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	return nil
}
