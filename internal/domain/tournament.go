package domain

import "time"

type Tournament struct {
	ID          string    `json:"tournament_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	MaxTickets  int       `json:"max_tickets"`
	// Price is in minor currency units (cents).
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TournamentDetails is a tournament plus its sold-ticket count.
type TournamentDetails struct {
	Tournament  Tournament `json:"tournament"`
	SoldTickets int        `json:"sold_tickets"`
}

type CreateTournamentInput struct {
	Name        string
	Description string
	Date        time.Time
	Location    string
	MaxTickets  int
	Price       int64
}

type UpdateTournamentInput struct {
	Name        *string
	Description *string
	Date        *time.Time
	Location    *string
	MaxTickets  *int
	Price       *int64
}

type TournamentFilter struct {
	Search   string
	Date     *time.Time
	Location string
	Page     int
	Limit    int
}
