package dto

import (
	"time"

	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type AccountResponse struct {
	ID        string `json:"account_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

type ProfileResponse struct {
	ID        string  `json:"profile_id"`
	Name      string  `json:"name"`
	Bio       *string `json:"bio,omitempty"`
	Category  string  `json:"category"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int               `json:"total"`
}

type TournamentResponse struct {
	ID          string `json:"tournament_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	MaxTickets  int    `json:"max_tickets"`
	Price       int64  `json:"price"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type TournamentDetailsResponse struct {
	Tournament       TournamentResponse `json:"tournament"`
	SoldTickets      int                `json:"sold_tickets"`
	AvailableTickets int                `json:"available_tickets"`
}

type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
	Total       int                  `json:"total"`
}

type TicketResponse struct {
	ID           string              `json:"ticket_id"`
	ProfileID    string              `json:"profile_id"`
	TournamentID string              `json:"tournament_id"`
	QRCode       string              `json:"qr_code"`
	Status       string              `json:"status"`
	PurchaseDate string              `json:"purchase_date"`
	CreatedAt    string              `json:"created_at"`
	Tournament   *TournamentResponse `json:"tournament,omitempty"`
}

type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}

type CheckinResponse struct {
	TicketID       string `json:"ticket_id"`
	Status         string `json:"status"`
	ProfileName    string `json:"profile_name"`
	TournamentName string `json:"tournament_name"`
}

type BracketResponse struct {
	ID           string             `json:"bracket_id"`
	TournamentID string             `json:"tournament_id"`
	Data         domain.BracketData `json:"bracket_data"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

type BracketListResponse struct {
	Brackets []BracketResponse `json:"brackets"`
	Total    int               `json:"total"`
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Bio:       p.Bio,
		Category:  string(p.Category),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTournamentResponse(t *domain.Tournament) TournamentResponse {
	return TournamentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Date:        t.Date.Format(time.RFC3339),
		Location:    t.Location,
		MaxTickets:  t.MaxTickets,
		Price:       t.Price,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTournamentDetailsResponse(d *domain.TournamentDetails) TournamentDetailsResponse {
	return TournamentDetailsResponse{
		Tournament:       ToTournamentResponse(&d.Tournament),
		SoldTickets:      d.SoldTickets,
		AvailableTickets: d.Tournament.MaxTickets - d.SoldTickets,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           t.ID,
		ProfileID:    t.ProfileID,
		TournamentID: t.TournamentID,
		QRCode:       t.QRCode,
		Status:       string(t.Status),
		PurchaseDate: t.PurchaseDate.Format(time.RFC3339),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.Tournament != nil {
		tr := ToTournamentResponse(t.Tournament)
		resp.Tournament = &tr
	}
	return resp
}

func ToCheckinResponse(d *domain.CheckinDetails) CheckinResponse {
	return CheckinResponse{
		TicketID:       d.TicketID,
		Status:         string(d.Status),
		ProfileName:    d.ProfileName,
		TournamentName: d.TournamentName,
	}
}

func ToBracketResponse(b *domain.Bracket) BracketResponse {
	return BracketResponse{
		ID:           b.ID,
		TournamentID: b.TournamentID,
		Data:         b.Data,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
