package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
)

type TournamentService struct {
	tournamentRepo ports.TournamentRepo
	ticketRepo     ports.TicketRepo
}

func NewTournamentService(tournamentRepo ports.TournamentRepo, ticketRepo ports.TicketRepo) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		ticketRepo:     ticketRepo,
	}
}

func (s *TournamentService) Create(ctx context.Context, input domain.CreateTournamentInput) (*domain.Tournament, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.MaxTickets < 1 {
		return nil, fmt.Errorf("%w: max_tickets must be at least 1", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	tournament := &domain.Tournament{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		MaxTickets:  input.MaxTickets,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("create tournament: %w", err)
	}

	return tournament, nil
}

func (s *TournamentService) List(ctx context.Context, filter domain.TournamentFilter) ([]*domain.Tournament, int, error) {
	return s.tournamentRepo.List(ctx, filter)
}

func (s *TournamentService) GetDetails(ctx context.Context, id string) (*domain.TournamentDetails, error) {
	return s.tournamentRepo.GetDetails(ctx, id)
}

func (s *TournamentService) Update(ctx context.Context, id string, input domain.UpdateTournamentInput) (*domain.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		tournament.Name = *input.Name
	}
	if input.Description != nil {
		tournament.Description = *input.Description
	}
	if input.Date != nil {
		tournament.Date = *input.Date
	}
	if input.Location != nil {
		tournament.Location = *input.Location
	}
	if input.MaxTickets != nil {
		if *input.MaxTickets < 1 {
			return nil, fmt.Errorf("%w: max_tickets must be at least 1", domain.ErrValidation)
		}
		tournament.MaxTickets = *input.MaxTickets
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		tournament.Price = *input.Price
	}

	if err = s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, fmt.Errorf("update tournament: %w", err)
	}

	return tournament, nil
}

func (s *TournamentService) Delete(ctx context.Context, id string) error {
	if _, err := s.tournamentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.ticketRepo.CountByTournament(ctx, id)
	if err != nil {
		return fmt.Errorf("count tickets: %w", err)
	}
	if count > 0 {
		return domain.ErrTournamentHasTickets
	}

	return s.tournamentRepo.Delete(ctx, id)
}
