package chirps

import (
	"context"

	"chirpy/internal/domain"
	"chirpy/internal/repository"

	"github.com/google/uuid"
)

type ChirpRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Chirp) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Chirp, error)
	List(ctx context.Context, f repository.ChirpFilter) ([]domain.Chirp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
