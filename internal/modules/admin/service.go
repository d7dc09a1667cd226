package admin

import (
	"context"
	"errors"

	"chirpy/internal/pkg/logger"

	"github.com/sirupsen/logrus"
)

var ErrResetForbidden = errors.New("reset is only allowed on the dev platform")

type Service struct {
	userRepo UserRepository
	hits     HitCounter
	dev      bool
}

func NewService(userRepo UserRepository, hits HitCounter, dev bool) *Service {
	return &Service{
		userRepo: userRepo,
		hits:     hits,
		dev:      dev,
	}
}

func (s *Service) Hits() int64 {
	return s.hits.Load()
}

// Reset deletes every user (chirps and refresh tokens cascade) and zeroes
// the hit counter.
func (s *Service) Reset(ctx context.Context) error {
	if !s.dev {
		return ErrResetForbidden
	}

	deleted, err := s.userRepo.DeleteAll(ctx)
	if err != nil {
		return err
	}
	s.hits.Reset()

	logger.Log.WithFields(logrus.Fields{"users_deleted": deleted}).Warn("admin reset")
	return nil
}
