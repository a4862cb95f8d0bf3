// Package profile contains profile/prediction use cases.
package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/entity"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

// GetProfileInput represents the input for getting a user's profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileUseCase returns the most recent profile/prediction record.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute retrieves the profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*entity.Profile, error) {
	profile, err := uc.profileRepo.FindLatestByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to load profile",
			err,
		)
	}
	if profile == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNotFound,
			"no profile has been submitted yet",
			domainerror.ErrProfileNotFound,
		)
	}
	return profile, nil
}
