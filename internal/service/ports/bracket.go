package ports

import (
	"context"

	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type BracketRepo interface {
	// Upsert replaces the tournament's bracket document wholesale;
	// a tournament has at most one bracket.
	Upsert(ctx context.Context, b *domain.Bracket) (*domain.Bracket, error)
	GetByTournament(ctx context.Context, tournamentID string) (*domain.Bracket, error)
	GetByID(ctx context.Context, id string) (*domain.Bracket, error)
	List(ctx context.Context, page, limit int) ([]*domain.Bracket, int, error)
	UpdateData(ctx context.Context, id string, data domain.BracketData) (*domain.Bracket, error)
}
