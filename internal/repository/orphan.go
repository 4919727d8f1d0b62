package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

// OrphanRepository persists charges that were captured by the payment
// provider but whose ticket transaction never committed. Rows live
// until the reconciliation sweep refunds them.
type OrphanRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrphanRepo(db *dbpg.DB) *OrphanRepository {
	return &OrphanRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OrphanRepository) Record(ctx context.Context, c *domain.OrphanedCharge) error {
	query := `INSERT INTO orphaned_charges (id, payment_intent_id, profile_id, tournament_id, amount, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.PaymentRef, c.ProfileID, c.TournamentID, c.Amount, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orphaned charge: %w", err)
	}

	return nil
}

func (r *OrphanRepository) ListUnresolved(ctx context.Context, limit int) ([]*domain.OrphanedCharge, error) {
	query := `SELECT id, payment_intent_id, profile_id, tournament_id, amount, created_at, resolved_at
			  FROM orphaned_charges
			  WHERE resolved_at IS NULL
			  ORDER BY created_at ASC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list orphaned charges: %w", err)
	}
	defer rows.Close()

	var res []*domain.OrphanedCharge
	for rows.Next() {
		var c domain.OrphanedCharge
		if err = rows.Scan(&c.ID, &c.PaymentRef, &c.ProfileID, &c.TournamentID, &c.Amount, &c.CreatedAt, &c.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan orphaned charge: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *OrphanRepository) MarkResolved(ctx context.Context, id string) error {
	query := `UPDATE orphaned_charges SET resolved_at = now() WHERE id = $1 AND resolved_at IS NULL`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("resolve orphaned charge: %w", err)
	}

	return nil
}
