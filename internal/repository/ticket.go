package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Purchase holds exclusive locks on the profile and tournament rows
// for the whole transaction, so the capacity check and the insert are
// serialized per tournament. The charge runs between the two; if the
// insert or commit fails afterwards the transaction rolls back but
// the charge has already happened, which the caller must reconcile.
func (r *TicketRepository) Purchase(ctx context.Context, profileID, tournamentID string, charge ports.ChargeFunc, mint ports.MintFunc) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	if err = tx.QueryRowContext(ctx,
		`SELECT id FROM profiles WHERE id = $1 FOR UPDATE`, profileID,
	).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("lock profile: %w", err)
	}

	var maxTickets int
	var price int64
	if err = tx.QueryRowContext(ctx,
		`SELECT max_tickets, price FROM tournaments WHERE id = $1 FOR UPDATE`, tournamentID,
	).Scan(&maxTickets, &price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("lock tournament: %w", err)
	}

	var sold int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tickets WHERE tournament_id = $1 AND status = ANY($2)`,
		tournamentID, pq.Array(domain.CapacityStatuses),
	).Scan(&sold); err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	if sold >= maxTickets {
		return nil, domain.ErrSoldOut
	}

	paymentRef, err := charge(ctx, price)
	if err != nil {
		return nil, fmt.Errorf("charge: %w", err)
	}

	ticket := &domain.Ticket{
		ID:           uuid.New().String(),
		ProfileID:    profileID,
		TournamentID: tournamentID,
		Status:       domain.TicketStatusPurchased,
		PurchaseDate: time.Now().UTC(),
		PaymentRef:   paymentRef,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	ticket.QRCode, err = mint(ticket.ID)
	if err != nil {
		return nil, fmt.Errorf("mint check-in token: %w", err)
	}

	query := `INSERT INTO tickets (id, profile_id, tournament_id, qr_code, status, purchase_date, payment_intent_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, query,
		ticket.ID, ticket.ProfileID, ticket.TournamentID, ticket.QRCode,
		ticket.Status, ticket.PurchaseDate, ticket.PaymentRef,
		ticket.CreatedAt, ticket.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	return ticket, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	query := `SELECT id, profile_id, tournament_id, qr_code, status, purchase_date, payment_intent_id, created_at, updated_at
			  FROM tickets
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	return scanTicket(row)
}

func (r *TicketRepository) GetOwned(ctx context.Context, ticketID, profileID string) (*domain.Ticket, error) {
	query := `SELECT tk.id, tk.profile_id, tk.tournament_id, tk.qr_code, tk.status, tk.purchase_date, tk.payment_intent_id, tk.created_at, tk.updated_at,
					 t.id, t.name, t.description, t.date, t.location, t.max_tickets, t.price, t.created_at, t.updated_at
			  FROM tickets tk
			  JOIN tournaments t ON t.id = tk.tournament_id
			  WHERE tk.id=$1 AND tk.profile_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID, profileID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var tk domain.Ticket
	var t domain.Tournament
	if err = row.Scan(
		&tk.ID, &tk.ProfileID, &tk.TournamentID, &tk.QRCode, &tk.Status,
		&tk.PurchaseDate, &tk.PaymentRef, &tk.CreatedAt, &tk.UpdatedAt,
		&t.ID, &t.Name, &t.Description, &t.Date, &t.Location,
		&t.MaxTickets, &t.Price, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}
	tk.Tournament = &t

	return &tk, nil
}

func (r *TicketRepository) ListByProfile(ctx context.Context, profileID string, f domain.TicketFilter) ([]*domain.Ticket, int, error) {
	where := `WHERE profile_id = $1`
	args := []any{profileID}

	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if f.TournamentID != "" {
		args = append(args, f.TournamentID)
		where += fmt.Sprintf(` AND tournament_id = $%d`, len(args))
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM tickets `+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count tickets: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan ticket count: %w", err)
	}

	query := fmt.Sprintf(`SELECT id, profile_id, tournament_id, qr_code, status, purchase_date, payment_intent_id, created_at, updated_at
			  FROM tickets %s
			  ORDER BY purchase_date DESC
			  LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var tk domain.Ticket
		if err = rows.Scan(
			&tk.ID, &tk.ProfileID, &tk.TournamentID, &tk.QRCode, &tk.Status,
			&tk.PurchaseDate, &tk.PaymentRef, &tk.CreatedAt, &tk.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &tk)
	}

	return res, total, rows.Err()
}

func (r *TicketRepository) CountByProfile(ctx context.Context, profileID string) (int, error) {
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy,
		`SELECT COUNT(*) FROM tickets WHERE profile_id = $1`, profileID,
	)
	if err != nil {
		return 0, fmt.Errorf("count tickets by profile: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan ticket count: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) CountByTournament(ctx context.Context, tournamentID string) (int, error) {
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy,
		`SELECT COUNT(*) FROM tickets WHERE tournament_id = $1`, tournamentID,
	)
	if err != nil {
		return 0, fmt.Errorf("count tickets by tournament: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan ticket count: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) GetCheckinDetails(ctx context.Context, ticketID string) (*domain.CheckinDetails, error) {
	query := `SELECT tk.id, tk.status, p.name, t.name
			  FROM tickets tk
			  JOIN profiles p ON p.id = tk.profile_id
			  JOIN tournaments t ON t.id = tk.tournament_id
			  WHERE tk.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get checkin details: %w", err)
	}

	var d domain.CheckinDetails
	if err = row.Scan(&d.TicketID, &d.Status, &d.ProfileName, &d.TournamentName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan checkin details: %w", err)
	}

	return &d, nil
}

// CheckIn is the replay guard: the row lock plus the status check
// make the purchased->checked_in transition happen at most once.
func (r *TicketRepository) CheckIn(ctx context.Context, ticketID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.TicketStatus
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM tickets WHERE id = $1 FOR UPDATE`, ticketID,
	).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("lock ticket: %w", err)
	}

	switch status {
	case domain.TicketStatusCheckedIn:
		return domain.ErrAlreadyCheckedIn
	case domain.TicketStatusCanceled:
		return domain.ErrTicketCanceled
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE tickets SET status = $2, updated_at = now() WHERE id = $1`,
		ticketID, domain.TicketStatusCheckedIn,
	); err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}

	return tx.Commit()
}

// Cancel flips purchased->canceled only after the refund callback
// reports success; a failed refund rolls back with the ticket left in
// purchased.
func (r *TicketRepository) Cancel(ctx context.Context, ticketID string, refund ports.RefundFunc) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.TicketStatus
	var paymentRef string
	if err = tx.QueryRowContext(ctx,
		`SELECT status, payment_intent_id FROM tickets WHERE id = $1 FOR UPDATE`, ticketID,
	).Scan(&status, &paymentRef); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("lock ticket: %w", err)
	}

	if status != domain.TicketStatusPurchased {
		return domain.ErrNotPurchased
	}

	if err = refund(ctx, paymentRef); err != nil {
		return fmt.Errorf("refund: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE tickets SET status = $2, updated_at = now() WHERE id = $1`,
		ticketID, domain.TicketStatusCanceled,
	); err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}

	return tx.Commit()
}

func (r *TicketRepository) ListCheckedInPlayers(ctx context.Context, tournamentID string) ([]domain.CheckedInPlayer, error) {
	query := `SELECT p.id, p.name, p.category
			  FROM tickets tk
			  JOIN profiles p ON p.id = tk.profile_id
			  WHERE tk.tournament_id = $1 AND tk.status = $2
			  ORDER BY p.name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tournamentID, domain.TicketStatusCheckedIn)
	if err != nil {
		return nil, fmt.Errorf("list checked-in players: %w", err)
	}
	defer rows.Close()

	var res []domain.CheckedInPlayer
	for rows.Next() {
		var p domain.CheckedInPlayer
		if err = rows.Scan(&p.ProfileID, &p.Name, &p.Category); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanTicket(row *sql.Row) (*domain.Ticket, error) {
	var tk domain.Ticket
	if err := row.Scan(
		&tk.ID, &tk.ProfileID, &tk.TournamentID, &tk.QRCode, &tk.Status,
		&tk.PurchaseDate, &tk.PaymentRef, &tk.CreatedAt, &tk.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &tk, nil
}
