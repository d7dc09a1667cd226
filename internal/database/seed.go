package database

import (
	"context"
	"fmt"

	"chirpy/internal/domain"
	"chirpy/internal/pkg/auth"
	"chirpy/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemoPassword is shared by every seeded account.
const DemoPassword = "chirpy123"

type seedUser struct {
	feed   bool
	email  string
	red    bool
	chirps []string
}

var seedUsers = []seedUser{
	{
		feed:  true,
		email: "walt@breakingbad.com",
		red:   true,
		chirps: []string{
			"I'm the one who knocks!",
			"Say my name.",
		},
	},
	{
		email: "jesse@breakingbad.com",
		chirps: []string{
			"Yeah, science!",
		},
	},
	{
		email: "saul@bettercall.com",
		chirps: []string{
			"Did you know that you have rights? The Constitution says you do.",
		},
	},
}

// Seed wipes all users (chirps and refresh tokens cascade) and inserts a
// small demo dataset. The first demo user gets feedUserID so the public feed
// is populated. Returns the number of chirps created.
func Seed(ctx context.Context, db *gorm.DB, feedUserID uuid.UUID) (int, error) {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return 0, err
	}

	created := 0
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		logger.Log.Info("Cleaning old data...")
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.User{}).Error; err != nil {
			return fmt.Errorf("delete users: %w", err)
		}

		for _, su := range seedUsers {
			u := domain.User{
				Email:          su.email,
				HashedPassword: hash,
				IsChirpyRed:    su.red,
			}
			if su.feed {
				u.ID = feedUserID
			}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("create user %s: %w", su.email, err)
			}

			for _, body := range su.chirps {
				if err := tx.Omit("User").Create(&domain.Chirp{Body: body, UserID: u.ID}).Error; err != nil {
					return fmt.Errorf("create chirp: %w", err)
				}
				created++
			}
			logger.Log.Infof("User created: %s / %s", su.email, DemoPassword)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
