package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
)

// TokenVerifier checks a presented check-in token and returns the
// embedded ticket id. Any failure is domain.ErrInvalidToken.
type TokenVerifier interface {
	Decode(qrData string) (string, error)
}

type CheckinService struct {
	ticketRepo ports.TicketRepo
	verifier   TokenVerifier
	logger     logger.Logger
}

func NewCheckinService(ticketRepo ports.TicketRepo, verifier TokenVerifier, logger logger.Logger) *CheckinService {
	return &CheckinService{
		ticketRepo: ticketRepo,
		verifier:   verifier,
		logger:     logger,
	}
}

// Scan verifies the token offline, resolves it to a ticket, then
// performs the purchased->checked_in transition. A missing ticket is
// a distinct condition from a bad token; a replay reports
// domain.ErrAlreadyCheckedIn.
func (s *CheckinService) Scan(ctx context.Context, qrData string) (*domain.CheckinDetails, error) {
	ticketID, err := s.verifier.Decode(qrData)
	if err != nil {
		return nil, err
	}

	details, err := s.ticketRepo.GetCheckinDetails(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("resolve ticket: %w", err)
	}

	if err = s.ticketRepo.CheckIn(ctx, details.TicketID); err != nil {
		return nil, fmt.Errorf("check in ticket: %w", err)
	}

	s.logger.Info("ticket checked in",
		logger.String("ticket_id", details.TicketID),
		logger.String("profile_name", details.ProfileName),
		logger.String("tournament_name", details.TournamentName),
	)

	details.Status = domain.TicketStatusCheckedIn
	return details, nil
}
