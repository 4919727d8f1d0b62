package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type chargeReconciler interface {
	SweepOrphanedCharges(ctx context.Context) ([]*domain.OrphanedCharge, error)
}

type Scheduler struct {
	ticketService chargeReconciler
	interval      time.Duration
	logger        logger.Logger
}

func New(
	ticketService chargeReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		ticketService: ticketService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	resolved, err := s.ticketService.SweepOrphanedCharges(ctx)
	if err != nil {
		s.logger.Error("failed to sweep orphaned charges",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, o := range resolved {
		s.logger.Info("orphaned charge refunded",
			logger.String("payment_intent_id", o.PaymentRef),
			logger.String("profile_id", o.ProfileID),
			logger.String("tournament_id", o.TournamentID),
		)
	}
}
