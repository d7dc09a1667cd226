package repository

import (
	"context"
	"time"

	"chirpy/internal/domain"

	"gorm.io/gorm"
)

// RefreshTokenRepository provides DB access for refresh tokens.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	t.ExpiresAt = t.ExpiresAt.UTC()
	return translate(r.db.WithContext(ctx).Omit("User").Create(t).Error)
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// GetUserByActiveToken returns the owner of token if it is neither revoked
// nor expired at now.
func (r *RefreshTokenRepository) GetUserByActiveToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Joins("JOIN refresh_tokens ON refresh_tokens.user_id = users.id").
		Where("refresh_tokens.token = ?", token).
		Where("refresh_tokens.revoked_at IS NULL").
		Where("refresh_tokens.expires_at > ?", now.UTC()).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// Revoke marks token revoked. ErrNotFound means there was no active row
// (unrevoked and unexpired at now) with that value.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string, now time.Time) error {
	now = now.UTC()
	tx := r.db.WithContext(ctx).
		Model(&domain.RefreshToken{}).
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", token, now).
		Updates(map[string]any{
			"revoked_at": now,
			"updated_at": now,
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
