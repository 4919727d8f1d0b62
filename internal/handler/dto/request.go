package dto

import "github.com/zachsplat/tournament-backend-new/internal/domain"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateProfileRequest struct {
	Name     string  `json:"name" binding:"required"`
	Bio      *string `json:"bio"`
	Category string  `json:"category" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Category *string `json:"category"`
}

type PurchaseTicketRequest struct {
	TournamentID    string `json:"tournament_id" binding:"required,uuid"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

type ScanRequest struct {
	QRData string `json:"qr_data" binding:"required"`
}

type CreateTournamentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	MaxTickets  int    `json:"max_tickets" binding:"required,gt=0"`
	Price       int64  `json:"price" binding:"min=0"`
}

type UpdateTournamentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	MaxTickets  *int    `json:"max_tickets"`
	Price       *int64  `json:"price"`
}

type UpdateBracketRequest struct {
	Data domain.BracketData `json:"bracket_data" binding:"required"`
}

type UpdateAccountRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
