package webhooks

import (
	"context"
	"errors"

	"chirpy/internal/pkg/logger"
	"chirpy/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// HandleEvent applies a Polka event. Events other than user.upgraded are
// acknowledged and ignored.
func (s *Service) HandleEvent(ctx context.Context, event string, userID uuid.UUID) error {
	if event != EventUserUpgraded {
		logger.Log.WithField("event", event).Debug("polka event ignored")
		return nil
	}

	if err := s.users.UpgradeToChirpyRed(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	logger.Log.WithFields(logrus.Fields{"user_id": userID}).Info("user upgraded to chirpy red")
	return nil
}
