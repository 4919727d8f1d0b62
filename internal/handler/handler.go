package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/handler/dto"
	"github.com/zachsplat/tournament-backend-new/internal/middleware"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}

type ProfileSvc interface {
	Create(ctx context.Context, accountID string, input domain.CreateProfileInput) (*domain.Profile, error)
	Get(ctx context.Context, accountID, profileID string) (*domain.Profile, error)
	List(ctx context.Context, accountID string, filter domain.ProfileFilter) ([]*domain.Profile, int, error)
	Update(ctx context.Context, accountID, profileID string, input domain.UpdateProfileInput) (*domain.Profile, error)
	Delete(ctx context.Context, accountID, profileID string) error
}

type TournamentSvc interface {
	Create(ctx context.Context, input domain.CreateTournamentInput) (*domain.Tournament, error)
	List(ctx context.Context, filter domain.TournamentFilter) ([]*domain.Tournament, int, error)
	GetDetails(ctx context.Context, id string) (*domain.TournamentDetails, error)
	Update(ctx context.Context, id string, input domain.UpdateTournamentInput) (*domain.Tournament, error)
	Delete(ctx context.Context, id string) error
}

type TicketSvc interface {
	Purchase(ctx context.Context, accountID, profileID, tournamentID, paymentMethodID string) (*domain.Ticket, error)
	ListByProfile(ctx context.Context, accountID, profileID string, filter domain.TicketFilter) ([]*domain.Ticket, int, error)
	GetByID(ctx context.Context, accountID, profileID, ticketID string) (*domain.Ticket, error)
	Cancel(ctx context.Context, accountID, profileID, ticketID string) error
}

type CheckinSvc interface {
	Scan(ctx context.Context, qrData string) (*domain.CheckinDetails, error)
}

type BracketSvc interface {
	Generate(ctx context.Context, tournamentID string) (*domain.Bracket, error)
	GetByTournament(ctx context.Context, tournamentID string) (*domain.Bracket, error)
	GetByID(ctx context.Context, bracketID string) (*domain.Bracket, error)
	List(ctx context.Context, page, limit int) ([]*domain.Bracket, int, error)
	Update(ctx context.Context, bracketID string, data domain.BracketData) (*domain.Bracket, error)
}

type AccountSvc interface {
	List(ctx context.Context, search string, page, limit int) ([]*domain.Account, int, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, id string, input domain.UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	authService       AuthSvc
	profileService    ProfileSvc
	tournamentService TournamentSvc
	ticketService     TicketSvc
	checkinService    CheckinSvc
	bracketService    BracketSvc
	accountService    AccountSvc
}

func NewHandler(
	authService AuthSvc,
	profileService ProfileSvc,
	tournamentService TournamentSvc,
	ticketService TicketSvc,
	checkinService CheckinSvc,
	bracketService BracketSvc,
	accountService AccountSvc,
) *Handler {
	return &Handler{
		authService:       authService,
		profileService:    profileService,
		tournamentService: tournamentService,
		ticketService:     ticketService,
		checkinService:    checkinService,
		bracketService:    bracketService,
		accountService:    accountService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	account, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, account, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:   token,
		Account: dto.ToAccountResponse(account),
	})
}

// Profiles

func (h *Handler) CreateProfile(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), identity.AccountID, domain.CreateProfileInput{
		Name:     req.Name,
		Bio:      req.Bio,
		Category: domain.Category(req.Category),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

func (h *Handler) GetProfile(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	profileID := c.Param("profileId")
	if _, err := uuid.Parse(profileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), identity.AccountID, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) ListProfiles(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	filter := domain.ProfileFilter{
		Name:     c.Query("name"),
		Category: domain.Category(c.Query("category")),
	}
	filter.Page, filter.Limit = pagination(c)

	profiles, total, err := h.profileService.List(c.Request.Context(), identity.AccountID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ProfileListResponse{
		Profiles: make([]dto.ProfileResponse, 0, len(profiles)),
		Total:    total,
	}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, dto.ToProfileResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	profileID := c.Param("profileId")
	if _, err := uuid.Parse(profileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateProfileInput{
		Name: req.Name,
		Bio:  req.Bio,
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		input.Category = &category
	}

	profile, err := h.profileService.Update(c.Request.Context(), identity.AccountID, profileID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) DeleteProfile(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	profileID := c.Param("profileId")
	if _, err := uuid.Parse(profileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), identity.AccountID, profileID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Tickets

func (h *Handler) PurchaseTicket(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	profileID := c.Param("profileId")
	if _, err := uuid.Parse(profileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}

	var req dto.PurchaseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.ticketService.Purchase(
		c.Request.Context(),
		identity.AccountID, profileID, req.TournamentID, req.PaymentMethodID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) ListTickets(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	profileID := c.Param("profileId")
	if _, err := uuid.Parse(profileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}

	filter := domain.TicketFilter{
		Status:       domain.TicketStatus(c.Query("status")),
		TournamentID: c.Query("tournament_id"),
	}
	filter.Page, filter.Limit = pagination(c)

	tickets, total, err := h.ticketService.ListByProfile(c.Request.Context(), identity.AccountID, profileID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.TicketListResponse{
		Tickets: make([]dto.TicketResponse, 0, len(tickets)),
		Total:   total,
	}
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTicket(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	profileID := c.Param("profileId")
	ticketID := c.Param("ticketId")
	if _, err := uuid.Parse(profileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}
	if _, err := uuid.Parse(ticketID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), identity.AccountID, profileID, ticketID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) CancelTicket(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return
	}

	profileID := c.Param("profileId")
	ticketID := c.Param("ticketId")
	if _, err := uuid.Parse(profileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}
	if _, err := uuid.Parse(ticketID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	if err := h.ticketService.Cancel(c.Request.Context(), identity.AccountID, profileID, ticketID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "canceled"})
}

// Check-in

func (h *Handler) ScanTicket(c *ginext.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.checkinService.Scan(c.Request.Context(), req.QRData)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinResponse(details))
}

// Tournaments

func (h *Handler) CreateTournament(c *ginext.Context) {
	var req dto.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	tournament, err := h.tournamentService.Create(c.Request.Context(), domain.CreateTournamentInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		MaxTickets:  req.MaxTickets,
		Price:       req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTournamentResponse(tournament))
}

func (h *Handler) ListTournaments(c *ginext.Context) {
	filter := domain.TournamentFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}
	filter.Page, filter.Limit = pagination(c)

	tournaments, total, err := h.tournamentService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.TournamentListResponse{
		Tournaments: make([]dto.TournamentResponse, 0, len(tournaments)),
		Total:       total,
	}
	for _, t := range tournaments {
		resp.Tournaments = append(resp.Tournaments, dto.ToTournamentResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTournament(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tournament id"})
		return
	}

	details, err := h.tournamentService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentDetailsResponse(details))
}

func (h *Handler) UpdateTournament(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tournament id"})
		return
	}

	var req dto.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateTournamentInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		MaxTickets:  req.MaxTickets,
		Price:       req.Price,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected RFC3339",
			})
			return
		}
		input.Date = &date
	}

	tournament, err := h.tournamentService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentResponse(tournament))
}

func (h *Handler) DeleteTournament(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tournament id"})
		return
	}

	if err := h.tournamentService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Brackets

func (h *Handler) GenerateBracket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tournament id"})
		return
	}

	bracket, err := h.bracketService.Generate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBracketResponse(bracket))
}

func (h *Handler) GetBracket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tournament id"})
		return
	}

	bracket, err := h.bracketService.GetByTournament(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBracketResponse(bracket))
}

func (h *Handler) GetBracketByID(c *ginext.Context) {
	bracketID := c.Param("bracketId")
	if _, err := uuid.Parse(bracketID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bracket id"})
		return
	}

	bracket, err := h.bracketService.GetByID(c.Request.Context(), bracketID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBracketResponse(bracket))
}

func (h *Handler) ListBrackets(c *ginext.Context) {
	page, limit := pagination(c)

	brackets, total, err := h.bracketService.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.BracketListResponse{
		Brackets: make([]dto.BracketResponse, 0, len(brackets)),
		Total:    total,
	}
	for _, b := range brackets {
		resp.Brackets = append(resp.Brackets, dto.ToBracketResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBracket(c *ginext.Context) {
	bracketID := c.Param("bracketId")
	if _, err := uuid.Parse(bracketID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bracket id"})
		return
	}

	var req dto.UpdateBracketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bracket, err := h.bracketService.Update(c.Request.Context(), bracketID, req.Data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBracketResponse(bracket))
}

// Admin user management

func (h *Handler) ListAccounts(c *ginext.Context) {
	page, limit := pagination(c)

	accounts, total, err := h.accountService.List(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.AccountListResponse{
		Accounts: make([]dto.AccountResponse, 0, len(accounts)),
		Total:    total,
	}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, dto.ToAccountResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAccount(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *Handler) UpdateAccount(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	account, err := h.accountService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *Handler) DeleteAccount(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func pagination(c *ginext.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrTournamentNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrBracketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrTicketCanceled),
		errors.Is(err, domain.ErrNotPurchased),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrInsufficientPlayers),
		errors.Is(err, domain.ErrProfileHasTickets),
		errors.Is(err, domain.ErrTournamentHasTickets),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
