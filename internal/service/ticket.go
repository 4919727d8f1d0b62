package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
)

const (
	chargeCurrency = "usd"
	orphanBatch    = 50
)

// TokenMinter produces the signed check-in token stored on a ticket.
type TokenMinter interface {
	Encode(ticketID string) (string, error)
}

type TicketService struct {
	ticketRepo     ports.TicketRepo
	profileRepo    ports.ProfileRepo
	tournamentRepo ports.TournamentRepo
	orphanRepo     ports.OrphanRepo
	payments       ports.PaymentProvider
	minter         TokenMinter
	logger         logger.Logger
}

func NewTicketService(
	ticketRepo ports.TicketRepo,
	profileRepo ports.ProfileRepo,
	tournamentRepo ports.TournamentRepo,
	orphanRepo ports.OrphanRepo,
	payments ports.PaymentProvider,
	minter TokenMinter,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		ticketRepo:     ticketRepo,
		profileRepo:    profileRepo,
		tournamentRepo: tournamentRepo,
		orphanRepo:     orphanRepo,
		payments:       payments,
		minter:         minter,
		logger:         logger,
	}
}

// Purchase runs the full ticket purchase: ownership check, then a
// single repository transaction serializing the capacity check, the
// external charge and the insert. A charge that was captured but
// whose ticket failed to persist is recorded for reconciliation.
func (s *TicketService) Purchase(ctx context.Context, accountID, profileID, tournamentID, paymentMethodID string) (*domain.Ticket, error) {
	profile, err := s.profileRepo.GetOwned(ctx, profileID, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("check profile: %w", err)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("check tournament: %w", err)
	}

	var chargedRef string
	var chargedAmount int64
	charge := func(ctx context.Context, amount int64) (string, error) {
		ref, err := s.payments.Charge(ctx, amount, chargeCurrency, paymentMethodID)
		if err != nil {
			return "", err
		}
		chargedRef = ref
		chargedAmount = amount
		return ref, nil
	}

	ticket, err := s.ticketRepo.Purchase(ctx, profile.ID, tournament.ID, charge, s.minter.Encode)
	if err != nil {
		if chargedRef != "" {
			s.recordOrphanedCharge(ctx, chargedRef, profile.ID, tournament.ID, chargedAmount, err)
		}
		return nil, fmt.Errorf("purchase ticket: %w", err)
	}

	s.logger.Info("ticket purchased",
		logger.String("ticket_id", ticket.ID),
		logger.String("profile_id", profile.ID),
		logger.String("tournament_id", tournament.ID),
		logger.String("payment_intent_id", ticket.PaymentRef),
	)

	return ticket, nil
}

// recordOrphanedCharge handles the dual-write gap: the provider
// captured the charge but the local transaction rolled back. The
// charge is journaled for the reconciliation sweep; if even that
// fails, the log line is the last trace for manual follow-up.
func (s *TicketService) recordOrphanedCharge(ctx context.Context, paymentRef, profileID, tournamentID string, amount int64, cause error) {
	s.logger.LogAttrs(ctx, logger.ErrorLevel, "orphaned charge",
		logger.String("payment_intent_id", paymentRef),
		logger.String("profile_id", profileID),
		logger.String("tournament_id", tournamentID),
		logger.Int64("amount", amount),
		logger.String("cause", cause.Error()),
	)

	orphan := &domain.OrphanedCharge{
		ID:           uuid.New().String(),
		PaymentRef:   paymentRef,
		ProfileID:    profileID,
		TournamentID: tournamentID,
		Amount:       amount,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.orphanRepo.Record(context.WithoutCancel(ctx), orphan); err != nil {
		s.logger.Error("failed to record orphaned charge",
			logger.String("payment_intent_id", paymentRef),
			logger.String("error", err.Error()),
		)
	}
}

func (s *TicketService) ListByProfile(ctx context.Context, accountID, profileID string, filter domain.TicketFilter) ([]*domain.Ticket, int, error) {
	profile, err := s.profileRepo.GetOwned(ctx, profileID, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, 0, domain.ErrForbidden
		}
		return nil, 0, fmt.Errorf("check profile: %w", err)
	}

	return s.ticketRepo.ListByProfile(ctx, profile.ID, filter)
}

func (s *TicketService) GetByID(ctx context.Context, accountID, profileID, ticketID string) (*domain.Ticket, error) {
	profile, err := s.profileRepo.GetOwned(ctx, profileID, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("check profile: %w", err)
	}

	return s.ticketRepo.GetOwned(ctx, ticketID, profile.ID)
}

// Cancel refunds the recorded charge and flips the ticket to
// canceled. The repository runs the refund inside the row-locked
// transaction, so a refund failure leaves the ticket purchased.
func (s *TicketService) Cancel(ctx context.Context, accountID, profileID, ticketID string) error {
	profile, err := s.profileRepo.GetOwned(ctx, profileID, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("check profile: %w", err)
	}

	if _, err = s.ticketRepo.GetOwned(ctx, ticketID, profile.ID); err != nil {
		return fmt.Errorf("check ticket: %w", err)
	}

	if err = s.ticketRepo.Cancel(ctx, ticketID, s.payments.Refund); err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	s.logger.Info("ticket canceled",
		logger.String("ticket_id", ticketID),
		logger.String("profile_id", profile.ID),
	)

	return nil
}

// SweepOrphanedCharges refunds journaled charges that never produced a
// ticket. A refund or mark failure leaves the row unresolved for the
// next sweep.
func (s *TicketService) SweepOrphanedCharges(ctx context.Context) ([]*domain.OrphanedCharge, error) {
	orphans, err := s.orphanRepo.ListUnresolved(ctx, orphanBatch)
	if err != nil {
		return nil, fmt.Errorf("list orphaned charges: %w", err)
	}

	resolved := make([]*domain.OrphanedCharge, 0, len(orphans))
	for _, o := range orphans {
		if err := s.payments.Refund(ctx, o.PaymentRef); err != nil {
			s.logger.Error("failed to refund orphaned charge",
				logger.String("payment_intent_id", o.PaymentRef),
				logger.String("error", err.Error()),
			)
			continue
		}
		if err := s.orphanRepo.MarkResolved(ctx, o.ID); err != nil {
			s.logger.Error("failed to mark orphaned charge resolved",
				logger.String("payment_intent_id", o.PaymentRef),
				logger.String("error", err.Error()),
			)
			continue
		}
		resolved = append(resolved, o)
	}

	return resolved, nil
}
