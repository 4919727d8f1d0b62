package ports

import (
	"context"

	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.Profile) error
	// GetOwned returns the profile only when it belongs to accountID;
	// a profile owned by someone else reports domain.ErrProfileNotFound.
	GetOwned(ctx context.Context, profileID, accountID string) (*domain.Profile, error)
	ListByAccount(ctx context.Context, accountID string, filter domain.ProfileFilter) ([]*domain.Profile, int, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, profileID string) error
}
