package domain

import "time"

type TicketStatus string

const (
	TicketStatusPurchased TicketStatus = "purchased"
	TicketStatusCheckedIn TicketStatus = "checked_in"
	TicketStatusCanceled  TicketStatus = "canceled"
)

// Statuses that count against tournament capacity. Canceled tickets
// release their seat.
var CapacityStatuses = []TicketStatus{TicketStatusPurchased, TicketStatusCheckedIn}

type Ticket struct {
	ID           string       `json:"ticket_id"`
	ProfileID    string       `json:"profile_id"`
	TournamentID string       `json:"tournament_id"`
	QRCode       string       `json:"qr_code"`
	Status       TicketStatus `json:"status"`
	PurchaseDate time.Time    `json:"purchase_date"`
	PaymentRef   string       `json:"payment_intent_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Tournament *Tournament `json:"tournament,omitempty"`
}

type TicketFilter struct {
	Status       TicketStatus
	TournamentID string
	Page         int
	Limit        int
}

// CheckinDetails is what a scanner sees after a successful check-in.
type CheckinDetails struct {
	TicketID       string       `json:"ticket_id"`
	Status         TicketStatus `json:"-"`
	ProfileName    string       `json:"profile_name"`
	TournamentName string       `json:"tournament_name"`
}

// CheckedInPlayer is a checked-in ticket resolved to its profile,
// the unit the bracket builder consumes.
type CheckedInPlayer struct {
	ProfileID string   `json:"profile_id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
}

// OrphanedCharge records a captured payment whose ticket transaction
// failed to commit. Swept by the reconciliation scheduler.
type OrphanedCharge struct {
	ID           string     `json:"id"`
	PaymentRef   string     `json:"payment_intent_id"`
	ProfileID    string     `json:"profile_id"`
	TournamentID string     `json:"tournament_id"`
	Amount       int64      `json:"amount"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}
