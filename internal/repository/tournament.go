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

type TournamentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTournamentRepo(db *dbpg.DB) *TournamentRepository {
	return &TournamentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TournamentRepository) Create(ctx context.Context, t *domain.Tournament) error {
	query := `INSERT INTO tournaments (id, name, description, date, location, max_tickets, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Name, t.Description, t.Date, t.Location, t.MaxTickets, t.Price, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}

	return nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id string) (*domain.Tournament, error) {
	query := `SELECT id, name, description, date, location, max_tickets, price, created_at, updated_at
			  FROM tournaments
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}

	var t domain.Tournament
	if err = row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Date, &t.Location,
		&t.MaxTickets, &t.Price, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("scan tournament: %w", err)
	}

	return &t, nil
}

func (r *TournamentRepository) GetDetails(ctx context.Context, id string) (*domain.TournamentDetails, error) {
	query := `
		SELECT
			t.id, t.name, t.description, t.date, t.location,
			t.max_tickets, t.price, t.created_at, t.updated_at,
			COUNT(tk.id) AS sold_tickets
		FROM tournaments t
		LEFT JOIN tickets tk
			ON tk.tournament_id = t.id
			AND tk.status = ANY($2)
		WHERE t.id = $1
		GROUP BY t.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, pq.Array(domain.CapacityStatuses))
	if err != nil {
		return nil, fmt.Errorf("get tournament details: %w", err)
	}

	var d domain.TournamentDetails
	if err = row.Scan(
		&d.Tournament.ID, &d.Tournament.Name, &d.Tournament.Description,
		&d.Tournament.Date, &d.Tournament.Location,
		&d.Tournament.MaxTickets, &d.Tournament.Price,
		&d.Tournament.CreatedAt, &d.Tournament.UpdatedAt,
		&d.SoldTickets,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("scan tournament details: %w", err)
	}

	return &d, nil
}

func (r *TournamentRepository) List(ctx context.Context, f domain.TournamentFilter) ([]*domain.Tournament, int, error) {
	where := `WHERE 1=1`
	args := []any{}

	if f.Search != "" {
		args = append(args, f.Search)
		where += fmt.Sprintf(` AND name ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if f.Date != nil {
		args = append(args, *f.Date)
		where += fmt.Sprintf(` AND date = $%d`, len(args))
	}
	if f.Location != "" {
		args = append(args, f.Location)
		where += fmt.Sprintf(` AND location ILIKE '%%' || $%d || '%%'`, len(args))
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM tournaments `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count tournaments: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan tournament count: %w", err)
	}

	query := fmt.Sprintf(`SELECT id, name, description, date, location, max_tickets, price, created_at, updated_at
			  FROM tournaments %s
			  ORDER BY date ASC
			  LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tournaments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Tournament
	for rows.Next() {
		var t domain.Tournament
		if err = rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Date, &t.Location,
			&t.MaxTickets, &t.Price, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan tournament: %w", err)
		}
		res = append(res, &t)
	}

	return res, total, rows.Err()
}

func (r *TournamentRepository) Update(ctx context.Context, t *domain.Tournament) error {
	query := `UPDATE tournaments
			  SET name=$2, description=$3, date=$4, location=$5, max_tickets=$6, price=$7, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Name, t.Description, t.Date, t.Location, t.MaxTickets, t.Price,
	)
	if err != nil {
		return fmt.Errorf("update tournament: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tournament rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTournamentNotFound
	}

	return nil
}

func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM tournaments WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tournament rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTournamentNotFound
	}

	return nil
}
