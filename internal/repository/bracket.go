package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type BracketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBracketRepo(db *dbpg.DB) *BracketRepository {
	return &BracketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert writes the tournament's bracket document as a full replace.
// The unique index on tournament_id makes concurrent generations
// last-writer-wins without partial merges.
func (r *BracketRepository) Upsert(ctx context.Context, b *domain.Bracket) (*domain.Bracket, error) {
	data, err := json.Marshal(b.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal bracket data: %w", err)
	}

	query := `INSERT INTO brackets (id, tournament_id, bracket_data, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (tournament_id)
			  DO UPDATE SET bracket_data = EXCLUDED.bracket_data, updated_at = now()
			  RETURNING id, tournament_id, bracket_data, created_at, updated_at`

	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		uuid.New().String(), b.TournamentID, data, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert bracket: %w", err)
	}

	return scanBracket(row)
}

func (r *BracketRepository) GetByTournament(ctx context.Context, tournamentID string) (*domain.Bracket, error) {
	query := `SELECT id, tournament_id, bracket_data, created_at, updated_at
			  FROM brackets
			  WHERE tournament_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get bracket: %w", err)
	}

	return scanBracket(row)
}

func (r *BracketRepository) GetByID(ctx context.Context, id string) (*domain.Bracket, error) {
	query := `SELECT id, tournament_id, bracket_data, created_at, updated_at
			  FROM brackets
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get bracket: %w", err)
	}

	return scanBracket(row)
}

func (r *BracketRepository) List(ctx context.Context, page, limit int) ([]*domain.Bracket, int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM brackets`)
	if err != nil {
		return nil, 0, fmt.Errorf("count brackets: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan bracket count: %w", err)
	}

	query := `SELECT id, tournament_id, bracket_data, created_at, updated_at
			  FROM brackets
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list brackets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Bracket
	for rows.Next() {
		var b domain.Bracket
		var raw []byte
		if err = rows.Scan(&b.ID, &b.TournamentID, &raw, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan bracket: %w", err)
		}
		if err = json.Unmarshal(raw, &b.Data); err != nil {
			return nil, 0, fmt.Errorf("unmarshal bracket data: %w", err)
		}
		res = append(res, &b)
	}

	return res, total, rows.Err()
}

func (r *BracketRepository) UpdateData(ctx context.Context, id string, data domain.BracketData) (*domain.Bracket, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal bracket data: %w", err)
	}

	query := `UPDATE brackets
			  SET bracket_data = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING id, tournament_id, bracket_data, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, raw)
	if err != nil {
		return nil, fmt.Errorf("update bracket: %w", err)
	}

	return scanBracket(row)
}

func scanBracket(row *sql.Row) (*domain.Bracket, error) {
	var b domain.Bracket
	var raw []byte
	if err := row.Scan(&b.ID, &b.TournamentID, &raw, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBracketNotFound
		}
		return nil, fmt.Errorf("scan bracket: %w", err)
	}

	if err := json.Unmarshal(raw, &b.Data); err != nil {
		return nil, fmt.Errorf("unmarshal bracket data: %w", err)
	}

	return &b, nil
}
