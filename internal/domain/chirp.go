package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxChirpLength = 140

type Chirp struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Body   string    `json:"body" gorm:"size:140;not null"`
	UserID uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	User   User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Chirp) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
