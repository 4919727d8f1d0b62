package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
)

type BracketService struct {
	bracketRepo    ports.BracketRepo
	ticketRepo     ports.TicketRepo
	tournamentRepo ports.TournamentRepo
	rnd            *rand.Rand
	logger         logger.Logger
}

func NewBracketService(
	bracketRepo ports.BracketRepo,
	ticketRepo ports.TicketRepo,
	tournamentRepo ports.TournamentRepo,
	logger logger.Logger,
) *BracketService {
	return &BracketService{
		bracketRepo:    bracketRepo,
		ticketRepo:     ticketRepo,
		tournamentRepo: tournamentRepo,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:         logger,
	}
}

// Generate builds single-elimination brackets from the tournament's
// checked-in participants, one per category, and replaces the stored
// document wholesale.
func (s *BracketService) Generate(ctx context.Context, tournamentID string) (*domain.Bracket, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("check tournament: %w", err)
	}

	players, err := s.ticketRepo.ListCheckedInPlayers(ctx, tournament.ID)
	if err != nil {
		return nil, fmt.Errorf("list checked-in players: %w", err)
	}

	if len(players) < 2 {
		return nil, domain.ErrInsufficientPlayers
	}

	bracket, err := s.bracketRepo.Upsert(ctx, &domain.Bracket{
		TournamentID: tournament.ID,
		Data:         buildBracketData(players, s.rnd),
	})
	if err != nil {
		return nil, fmt.Errorf("save bracket: %w", err)
	}

	s.logger.Info("bracket generated",
		logger.String("bracket_id", bracket.ID),
		logger.String("tournament_id", tournament.ID),
		logger.Int("participants", len(players)),
	)

	return bracket, nil
}

func (s *BracketService) GetByTournament(ctx context.Context, tournamentID string) (*domain.Bracket, error) {
	return s.bracketRepo.GetByTournament(ctx, tournamentID)
}

func (s *BracketService) GetByID(ctx context.Context, bracketID string) (*domain.Bracket, error) {
	return s.bracketRepo.GetByID(ctx, bracketID)
}

func (s *BracketService) List(ctx context.Context, page, limit int) ([]*domain.Bracket, int, error) {
	return s.bracketRepo.List(ctx, page, limit)
}

// Update replaces a bracket's data in full. This is how winners are
// advanced into later rounds; generation never does that.
func (s *BracketService) Update(ctx context.Context, bracketID string, data domain.BracketData) (*domain.Bracket, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: bracket data is required", domain.ErrValidation)
	}

	if _, err := s.bracketRepo.GetByID(ctx, bracketID); err != nil {
		return nil, err
	}

	bracket, err := s.bracketRepo.UpdateData(ctx, bracketID, data)
	if err != nil {
		return nil, fmt.Errorf("update bracket: %w", err)
	}

	s.logger.Info("bracket updated",
		logger.String("bracket_id", bracket.ID),
		logger.String("tournament_id", bracket.TournamentID),
	)

	return bracket, nil
}

// buildBracketData partitions players by category and builds one
// single-elimination bracket per category. Categories with fewer
// than two players are skipped.
func buildBracketData(players []domain.CheckedInPlayer, rnd *rand.Rand) domain.BracketData {
	byCategory := make(map[domain.Category][]domain.CheckedInPlayer)
	for _, p := range players {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	data := make(domain.BracketData)
	for category, group := range byCategory {
		if len(group) < 2 {
			continue
		}
		data[string(category)] = buildCategoryBracket(group, rnd)
	}

	return data
}

// buildCategoryBracket shuffles the group, pairs consecutive players
// into round 1 (an odd player out gets a bye with a nil opponent),
// then halves the match count per round down to the final. Only
// round 1 has players assigned.
func buildCategoryBracket(group []domain.CheckedInPlayer, rnd *rand.Rand) domain.CategoryBracket {
	shuffled := make([]domain.CheckedInPlayer, len(group))
	copy(shuffled, group)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	matches := make([]domain.BracketMatch, 0, (len(shuffled)+1)/2)
	for i := 0; i < len(shuffled); i += 2 {
		m := domain.BracketMatch{
			Player1: &domain.BracketPlayer{
				ProfileID: shuffled[i].ProfileID,
				Name:      shuffled[i].Name,
			},
		}
		if i+1 < len(shuffled) {
			m.Player2 = &domain.BracketPlayer{
				ProfileID: shuffled[i+1].ProfileID,
				Name:      shuffled[i+1].Name,
			}
		}
		matches = append(matches, m)
	}

	rounds := []domain.BracketRound{{Round: 1, Matches: matches}}

	for current := len(matches); current > 1; {
		current = (current + 1) / 2
		rounds = append(rounds, domain.BracketRound{
			Round:   rounds[len(rounds)-1].Round + 1,
			Matches: make([]domain.BracketMatch, current),
		})
	}

	return domain.CategoryBracket{Rounds: rounds}
}
