package repository

import (
	"context"

	"chirpy/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChirpRepository struct {
	db *gorm.DB
}

func NewChirpRepository(db *gorm.DB) *ChirpRepository {
	return &ChirpRepository{db: db}
}

type ChirpFilter struct {
	// AuthorID restricts the result to one user when not uuid.Nil.
	AuthorID uuid.UUID
	Desc     bool
}

func (r *ChirpRepository) Create(ctx context.Context, c *domain.Chirp) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(c).Error)
}

func (r *ChirpRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chirp, error) {
	var c domain.Chirp
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ChirpRepository) List(ctx context.Context, f ChirpFilter) ([]domain.Chirp, error) {
	q := r.db.WithContext(ctx).Model(&domain.Chirp{})
	if f.AuthorID != uuid.Nil {
		q = q.Where("user_id = ?", f.AuthorID)
	}
	if f.Desc {
		q = q.Order("created_at DESC")
	} else {
		q = q.Order("created_at ASC")
	}

	chirps := make([]domain.Chirp, 0)
	if err := q.Find(&chirps).Error; err != nil {
		return nil, translate(err)
	}
	return chirps, nil
}

func (r *ChirpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Chirp{})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
