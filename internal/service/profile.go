package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
)

type ProfileService struct {
	profileRepo ports.ProfileRepo
	ticketRepo  ports.TicketRepo
}

func NewProfileService(profileRepo ports.ProfileRepo, ticketRepo ports.TicketRepo) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		ticketRepo:  ticketRepo,
	}
}

func (s *ProfileService) Create(ctx context.Context, accountID string, input domain.CreateProfileInput) (*domain.Profile, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: invalid category provided", domain.ErrValidation)
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      input.Name,
		Bio:       input.Bio,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, accountID, profileID string) (*domain.Profile, error) {
	return s.profileRepo.GetOwned(ctx, profileID, accountID)
}

func (s *ProfileService) List(ctx context.Context, accountID string, filter domain.ProfileFilter) ([]*domain.Profile, int, error) {
	if filter.Category != "" && !domain.ValidCategory(filter.Category) {
		filter.Category = ""
	}
	return s.profileRepo.ListByAccount(ctx, accountID, filter)
}

func (s *ProfileService) Update(ctx context.Context, accountID, profileID string, input domain.UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetOwned(ctx, profileID, accountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.Category != nil {
		if !domain.ValidCategory(*input.Category) {
			return nil, fmt.Errorf("%w: invalid category provided", domain.ErrValidation)
		}
		profile.Category = *input.Category
	}

	if err = s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return profile, nil
}

// Delete removes a profile, but only while it owns no tickets of any
// status; ticket history is never silently discarded.
func (s *ProfileService) Delete(ctx context.Context, accountID, profileID string) error {
	profile, err := s.profileRepo.GetOwned(ctx, profileID, accountID)
	if err != nil {
		return err
	}

	count, err := s.ticketRepo.CountByProfile(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("count tickets: %w", err)
	}
	if count > 0 {
		return domain.ErrProfileHasTickets
	}

	return s.profileRepo.Delete(ctx, profile.ID)
}
