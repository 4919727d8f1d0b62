package ports

import (
	"context"

	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

// ChargeFunc runs the external payment call inside the purchase
// transaction, after capacity is confirmed, and returns the
// provider's payment reference.
type ChargeFunc func(ctx context.Context, amount int64) (string, error)

// MintFunc produces the check-in token for the assigned ticket id.
type MintFunc func(ticketID string) (string, error)

// RefundFunc runs the external refund call inside the cancel
// transaction, while the ticket row is locked.
type RefundFunc func(ctx context.Context, paymentRef string) error

type TicketRepo interface {
	// Purchase serializes the capacity check, the charge and the
	// insert in one transaction holding exclusive locks on the
	// owning profile and the tournament. Reports domain.ErrSoldOut
	// when no seat remains.
	Purchase(ctx context.Context, profileID, tournamentID string, charge ChargeFunc, mint MintFunc) (*domain.Ticket, error)

	GetByID(ctx context.Context, ticketID string) (*domain.Ticket, error)
	GetOwned(ctx context.Context, ticketID, profileID string) (*domain.Ticket, error)
	ListByProfile(ctx context.Context, profileID string, filter domain.TicketFilter) ([]*domain.Ticket, int, error)
	CountByProfile(ctx context.Context, profileID string) (int, error)
	CountByTournament(ctx context.Context, tournamentID string) (int, error)

	// GetCheckinDetails resolves a verified token's ticket with the
	// names a scanner displays.
	GetCheckinDetails(ctx context.Context, ticketID string) (*domain.CheckinDetails, error)

	// CheckIn moves a purchased ticket to checked_in under a row
	// lock. Replays report domain.ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context, ticketID string) error

	// Cancel moves a purchased ticket to canceled under a row lock,
	// committing only after refund reports success.
	Cancel(ctx context.Context, ticketID string, refund RefundFunc) error

	ListCheckedInPlayers(ctx context.Context, tournamentID string) ([]domain.CheckedInPlayer, error)
}

type OrphanRepo interface {
	Record(ctx context.Context, charge *domain.OrphanedCharge) error
	ListUnresolved(ctx context.Context, limit int) ([]*domain.OrphanedCharge, error)
	MarkResolved(ctx context.Context, id string) error
}
