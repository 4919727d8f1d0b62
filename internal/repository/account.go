package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type AccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAccountRepo(db *dbpg.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, email, password_hash, role, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, email, password_hash, role, created_at
			  FROM accounts
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT id, email, password_hash, role, created_at
			  FROM accounts
			  WHERE email=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get account by email: %w", err)
	}

	return scanAccount(row)
}

func (r *AccountRepository) List(ctx context.Context, search string, page, limit int) ([]*domain.Account, int, error) {
	where := ``
	args := []any{}
	if search != "" {
		where = `WHERE email ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}

	countQuery := `SELECT COUNT(*) FROM accounts ` + where
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan account count: %w", err)
	}

	query := fmt.Sprintf(`SELECT id, email, password_hash, role, created_at
			  FROM accounts %s
			  ORDER BY created_at DESC
			  LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Account
	for rows.Next() {
		var a domain.Account
		if err = rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan account: %w", err)
		}
		res = append(res, &a)
	}

	return res, total, rows.Err()
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts
			  SET email=$2, password_hash=$3, role=$4
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.Email, a.PasswordHash, a.Role)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("account rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM accounts WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("account rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func scanAccount(row *sql.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return &a, nil
}
