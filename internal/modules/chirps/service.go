package chirps

import (
	"context"
	"errors"
	"unicode/utf8"

	"chirpy/internal/domain"
	"chirpy/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	chirps ChirpRepositoryInterface
	// feedUserID is the only author List returns.
	feedUserID uuid.UUID
}

func NewService(chirps ChirpRepositoryInterface, feedUserID uuid.UUID) *Service {
	return &Service{chirps: chirps, feedUserID: feedUserID}
}

// ValidateBody checks the raw body length in characters.
func ValidateBody(body string) error {
	n := utf8.RuneCountInString(body)
	if n == 0 {
		return ErrEmptyBody
	}
	if n > domain.MaxChirpLength {
		return ErrBodyTooLong
	}
	return nil
}

func (s *Service) Create(ctx context.Context, authorID uuid.UUID, body string) (*domain.Chirp, error) {
	if err := ValidateBody(body); err != nil {
		return nil, err
	}

	chirp := &domain.Chirp{
		Body:   CleanBody(body),
		UserID: authorID,
	}
	if err := s.chirps.Create(ctx, chirp); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return chirp, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Chirp, error) {
	chirp, err := s.chirps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrChirpNotFound
		}
		return nil, err
	}
	return chirp, nil
}

func (s *Service) List(ctx context.Context, desc bool) ([]domain.Chirp, error) {
	return s.chirps.List(ctx, repository.ChirpFilter{AuthorID: s.feedUserID, Desc: desc})
}

// Delete removes chirp id if callerID wrote it.
func (s *Service) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	chirp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if chirp.UserID != callerID {
		return ErrNotOwner
	}

	if err := s.chirps.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrChirpNotFound
		}
		return err
	}
	return nil
}
