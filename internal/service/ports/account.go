package ports

import (
	"context"

	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context, search string, page, limit int) ([]*domain.Account, int, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
}
