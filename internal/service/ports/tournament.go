package ports

import (
	"context"

	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type TournamentRepo interface {
	Create(ctx context.Context, t *domain.Tournament) error
	GetByID(ctx context.Context, id string) (*domain.Tournament, error)
	GetDetails(ctx context.Context, id string) (*domain.TournamentDetails, error)
	List(ctx context.Context, filter domain.TournamentFilter) ([]*domain.Tournament, int, error)
	Update(ctx context.Context, t *domain.Tournament) error
	Delete(ctx context.Context, id string) error
}
