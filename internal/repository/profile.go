package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, account_id, name, bio, category, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.AccountID, p.Name, p.Bio, p.Category, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) GetOwned(ctx context.Context, profileID, accountID string) (*domain.Profile, error) {
	query := `SELECT id, account_id, name, bio, category, created_at, updated_at
			  FROM profiles
			  WHERE id=$1 AND account_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, profileID, accountID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p domain.Profile
	if err = row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Bio, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	return &p, nil
}

func (r *ProfileRepository) ListByAccount(ctx context.Context, accountID string, f domain.ProfileFilter) ([]*domain.Profile, int, error) {
	where := `WHERE account_id = $1`
	args := []any{accountID}

	if f.Name != "" {
		args = append(args, f.Name)
		where += fmt.Sprintf(` AND name ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM profiles `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan profile count: %w", err)
	}

	query := fmt.Sprintf(`SELECT id, account_id, name, bio, category, created_at, updated_at
			  FROM profiles %s
			  ORDER BY name ASC
			  LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err = rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Bio, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan profile: %w", err)
		}
		res = append(res, &p)
	}

	return res, total, rows.Err()
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles
			  SET name=$2, bio=$3, category=$4, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.Name, p.Bio, p.Category)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, profileID string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM profiles WHERE id=$1`, profileID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
