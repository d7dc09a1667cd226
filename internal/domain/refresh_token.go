package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is an opaque session token. Rows are never deleted, only
// revoked by setting RevokedAt.
type RefreshToken struct {
	Token string `json:"-" gorm:"size:64;primaryKey"`

	UserID uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	User   User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	ExpiresAt time.Time  `json:"expiresAt" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revokedAt" gorm:"index"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsActive reports whether the token can still mint access tokens.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return !t.IsRevoked() && !t.IsExpired(now)
}
