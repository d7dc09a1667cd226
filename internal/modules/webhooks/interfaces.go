package webhooks

import (
	"context"

	"github.com/google/uuid"
)

type UserRepositoryInterface interface {
	UpgradeToChirpyRed(ctx context.Context, id uuid.UUID) error
}
