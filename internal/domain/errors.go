package domain

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrBracketNotFound    = errors.New("bracket not found")
)

var (
	ErrSoldOut              = errors.New("tickets are sold out for this tournament")
	ErrAlreadyCheckedIn     = errors.New("ticket already checked in")
	ErrTicketCanceled       = errors.New("ticket has been canceled")
	ErrNotPurchased         = errors.New("only purchased tickets can be canceled")
	ErrProfileHasTickets    = errors.New("cannot delete profile with existing tickets")
	ErrTournamentHasTickets = errors.New("cannot delete tournament with existing tickets")
	ErrInsufficientPlayers  = errors.New("not enough players to generate brackets")
	ErrEmailTaken           = errors.New("email already exists")
)

var (
	// ErrInvalidToken covers every check-in token failure (transport
	// decoding, structure, signature) so callers cannot tell which
	// check rejected it.
	ErrInvalidToken = errors.New("invalid check-in token")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("access token is missing or invalid")
	ErrForbidden          = errors.New("unauthorized access to the specified resource")
)

var (
	ErrValidation = errors.New("validation error")

	// ErrPayment wraps payment-provider failures; the handler surfaces
	// it as a generic retryable failure, details stay in the logs.
	ErrPayment      = errors.New("payment failed")
	ErrRefundFailed = errors.New("refund failed")
)
