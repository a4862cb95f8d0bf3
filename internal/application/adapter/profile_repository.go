package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/domain/entity"
)

// ProfileRepository defines the read side of the profile/prediction store.
type ProfileRepository interface {
	// FindLatestByUser returns the most recent profile row for a user, or nil if none exists.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
