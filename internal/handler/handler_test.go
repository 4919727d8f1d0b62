package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/handler/dto"
	hmocks "github.com/zachsplat/tournament-backend-new/internal/handler/mocks"
	"github.com/zachsplat/tournament-backend-new/internal/middleware"
	"github.com/zachsplat/tournament-backend-new/internal/router"
)

const testJWTSecret = "test-jwt-secret"

type testMocks struct {
	auth        *hmocks.MockAuthSvc
	profiles    *hmocks.MockProfileSvc
	tournaments *hmocks.MockTournamentSvc
	tickets     *hmocks.MockTicketSvc
	checkin     *hmocks.MockCheckinSvc
	brackets    *hmocks.MockBracketSvc
	accounts    *hmocks.MockAccountSvc
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()

	m := &testMocks{
		auth:        hmocks.NewMockAuthSvc(t),
		profiles:    hmocks.NewMockProfileSvc(t),
		tournaments: hmocks.NewMockTournamentSvc(t),
		tickets:     hmocks.NewMockTicketSvc(t),
		checkin:     hmocks.NewMockCheckinSvc(t),
		brackets:    hmocks.NewMockBracketSvc(t),
		accounts:    hmocks.NewMockAccountSvc(t),
	}

	h := NewHandler(m.auth, m.profiles, m.tournaments, m.tickets, m.checkin, m.brackets, m.accounts)
	r := router.InitRouter("test", h,
		middleware.Auth(testJWTSecret),
		middleware.RequireAdmin(),
	)

	return m, r
}

func bearerToken(t *testing.T, accountID string, role domain.Role) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": accountID,
		"role":       string(role),
		"iat":        now.Unix(),
		"exp":        now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(r http.Handler, method, path, auth string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t)

	account := &domain.Account{
		ID:        uuid.New().String(),
		Email:     "alice@example.com",
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
	}
	m.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(account, nil)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t)

	account := &domain.Account{ID: "a1", Email: "alice@example.com", Role: domain.RoleUser}
	m.auth.EXPECT().Login(mock.Anything, "alice@example.com", "correct horse").
		Return("signed-token", account, nil)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "a1", resp.Account.ID)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Tickets ---

func TestHandler_PurchaseTicket_Success(t *testing.T) {
	m, r := setupRouter(t)

	profileID := uuid.New().String()
	tournamentID := uuid.New().String()
	ticket := &domain.Ticket{
		ID:           uuid.New().String(),
		ProfileID:    profileID,
		TournamentID: tournamentID,
		QRCode:       "qr-data",
		Status:       domain.TicketStatusPurchased,
		PurchaseDate: time.Now(),
	}

	m.tickets.EXPECT().Purchase(mock.Anything, "a1", profileID, tournamentID, "pm_card").
		Return(ticket, nil)

	w := doJSON(r, http.MethodPost, "/api/profiles/"+profileID+"/tickets",
		bearerToken(t, "a1", domain.RoleUser),
		dto.PurchaseTicketRequest{TournamentID: tournamentID, PaymentMethodID: "pm_card"},
	)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ticket.ID, resp.ID)
	assert.Equal(t, "purchased", resp.Status)
	assert.Equal(t, "qr-data", resp.QRCode)
}

func TestHandler_PurchaseTicket_SoldOut(t *testing.T) {
	m, r := setupRouter(t)

	profileID := uuid.New().String()
	tournamentID := uuid.New().String()

	m.tickets.EXPECT().Purchase(mock.Anything, "a1", profileID, tournamentID, "pm_card").
		Return(nil, domain.ErrSoldOut)

	w := doJSON(r, http.MethodPost, "/api/profiles/"+profileID+"/tickets",
		bearerToken(t, "a1", domain.RoleUser),
		dto.PurchaseTicketRequest{TournamentID: tournamentID, PaymentMethodID: "pm_card"},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PurchaseTicket_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/profiles/"+uuid.New().String()+"/tickets", "",
		dto.PurchaseTicketRequest{TournamentID: uuid.New().String(), PaymentMethodID: "pm_card"},
	)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_PurchaseTicket_ForeignProfile(t *testing.T) {
	m, r := setupRouter(t)

	profileID := uuid.New().String()
	tournamentID := uuid.New().String()

	m.tickets.EXPECT().Purchase(mock.Anything, "a2", profileID, tournamentID, "pm_card").
		Return(nil, domain.ErrForbidden)

	w := doJSON(r, http.MethodPost, "/api/profiles/"+profileID+"/tickets",
		bearerToken(t, "a2", domain.RoleUser),
		dto.PurchaseTicketRequest{TournamentID: tournamentID, PaymentMethodID: "pm_card"},
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelTicket_NotPurchased(t *testing.T) {
	m, r := setupRouter(t)

	profileID := uuid.New().String()
	ticketID := uuid.New().String()

	m.tickets.EXPECT().Cancel(mock.Anything, "a1", profileID, ticketID).
		Return(domain.ErrNotPurchased)

	w := doJSON(r, http.MethodDelete, "/api/profiles/"+profileID+"/tickets/"+ticketID,
		bearerToken(t, "a1", domain.RoleUser), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Check-in ---

func TestHandler_ScanTicket_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.checkin.EXPECT().Scan(mock.Anything, "qr-data").
		Return(&domain.CheckinDetails{
			TicketID:       "tk1",
			Status:         domain.TicketStatusCheckedIn,
			ProfileName:    "Alice",
			TournamentName: "Spring Open",
		}, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/checkin/scan",
		bearerToken(t, "admin1", domain.RoleAdmin),
		dto.ScanRequest{QRData: "qr-data"},
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tk1", resp.TicketID)
	assert.Equal(t, "checked_in", resp.Status)
	assert.Equal(t, "Alice", resp.ProfileName)
}

func TestHandler_ScanTicket_Replay(t *testing.T) {
	m, r := setupRouter(t)

	m.checkin.EXPECT().Scan(mock.Anything, "qr-data").
		Return(nil, domain.ErrAlreadyCheckedIn)

	w := doJSON(r, http.MethodPost, "/api/admin/checkin/scan",
		bearerToken(t, "admin1", domain.RoleAdmin),
		dto.ScanRequest{QRData: "qr-data"},
	)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ScanTicket_InvalidToken(t *testing.T) {
	m, r := setupRouter(t)

	m.checkin.EXPECT().Scan(mock.Anything, "garbage").
		Return(nil, domain.ErrInvalidToken)

	w := doJSON(r, http.MethodPost, "/api/admin/checkin/scan",
		bearerToken(t, "admin1", domain.RoleAdmin),
		dto.ScanRequest{QRData: "garbage"},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ScanTicket_RequiresAdmin(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/admin/checkin/scan",
		bearerToken(t, "a1", domain.RoleUser),
		dto.ScanRequest{QRData: "qr-data"},
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Tournaments ---

func TestHandler_GetTournament_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.tournaments.EXPECT().GetDetails(mock.Anything, id).
		Return(&domain.TournamentDetails{
			Tournament:  domain.Tournament{ID: id, Name: "Spring Open", MaxTickets: 64, Date: time.Now(), CreatedAt: time.Now()},
			SoldTickets: 10,
		}, nil)

	w := doJSON(r, http.MethodGet, "/api/tournaments/"+id, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TournamentDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.SoldTickets)
	assert.Equal(t, 54, resp.AvailableTickets)
}

func TestHandler_GetTournament_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/tournaments/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateTournament_Success(t *testing.T) {
	m, r := setupRouter(t)

	tournament := &domain.Tournament{
		ID:         uuid.New().String(),
		Name:       "Spring Open",
		MaxTickets: 64,
		Price:      2500,
		Date:       time.Now().Add(30 * 24 * time.Hour),
		CreatedAt:  time.Now(),
	}
	m.tournaments.EXPECT().Create(mock.Anything, mock.Anything).Return(tournament, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/tournaments",
		bearerToken(t, "admin1", domain.RoleAdmin),
		dto.CreateTournamentRequest{
			Name:        "Spring Open",
			Description: "Annual spring tournament",
			Date:        tournament.Date.Format(time.RFC3339),
			Location:    "Main Hall",
			MaxTickets:  64,
			Price:       2500,
		},
	)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateTournament_RequiresAdmin(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/admin/tournaments",
		bearerToken(t, "a1", domain.RoleUser),
		dto.CreateTournamentRequest{
			Name:        "Spring Open",
			Description: "Annual spring tournament",
			Date:        time.Now().Format(time.RFC3339),
			Location:    "Main Hall",
			MaxTickets:  64,
		},
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteTournament_HasTickets(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.tournaments.EXPECT().Delete(mock.Anything, id).Return(domain.ErrTournamentHasTickets)

	w := doJSON(r, http.MethodDelete, "/api/admin/tournaments/"+id,
		bearerToken(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Brackets ---

func TestHandler_GenerateBracket_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	bracket := &domain.Bracket{
		ID:           uuid.New().String(),
		TournamentID: id,
		Data: domain.BracketData{
			string(domain.CategoryAdultMale): {Rounds: []domain.BracketRound{{Round: 1}}},
		},
	}
	m.brackets.EXPECT().Generate(mock.Anything, id).Return(bracket, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/tournaments/"+id+"/bracket",
		bearerToken(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BracketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data, string(domain.CategoryAdultMale))
}

func TestHandler_GenerateBracket_TooFewPlayers(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.brackets.EXPECT().Generate(mock.Anything, id).Return(nil, domain.ErrInsufficientPlayers)

	w := doJSON(r, http.MethodPost, "/api/admin/tournaments/"+id+"/bracket",
		bearerToken(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBracketByID_Success(t *testing.T) {
	m, r := setupRouter(t)

	bracket := &domain.Bracket{
		ID:           uuid.New().String(),
		TournamentID: uuid.New().String(),
		Data: domain.BracketData{
			string(domain.CategoryAdultFemale): {Rounds: []domain.BracketRound{{Round: 1}}},
		},
	}
	m.brackets.EXPECT().GetByID(mock.Anything, bracket.ID).Return(bracket, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/brackets/"+bracket.ID,
		bearerToken(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BracketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bracket.ID, resp.ID)
	assert.Equal(t, bracket.TournamentID, resp.TournamentID)
}

func TestHandler_GetBracketByID_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.brackets.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBracketNotFound)

	w := doJSON(r, http.MethodGet, "/api/admin/brackets/"+id,
		bearerToken(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBrackets_Success(t *testing.T) {
	m, r := setupRouter(t)

	brackets := []*domain.Bracket{
		{ID: uuid.New().String(), TournamentID: uuid.New().String()},
		{ID: uuid.New().String(), TournamentID: uuid.New().String()},
	}
	m.brackets.EXPECT().List(mock.Anything, 1, 20).Return(brackets, 2, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/brackets",
		bearerToken(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BracketListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Brackets, 2)
}

func TestHandler_GetBracket_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.brackets.EXPECT().GetByTournament(mock.Anything, id).Return(nil, domain.ErrBracketNotFound)

	w := doJSON(r, http.MethodGet, "/api/tournaments/"+id+"/bracket", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin users ---

func TestHandler_ListAccounts_Success(t *testing.T) {
	m, r := setupRouter(t)

	accounts := []*domain.Account{
		{ID: "a1", Email: "alice@example.com", Role: domain.RoleUser},
		{ID: "a2", Email: "bob@example.com", Role: domain.RoleAdmin},
	}
	m.accounts.EXPECT().List(mock.Anything, "", 1, 20).Return(accounts, 2, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/users",
		bearerToken(t, "admin1", domain.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AccountListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Accounts, 2)
}

func TestHandler_Profiles_CRUD(t *testing.T) {
	m, r := setupRouter(t)

	auth := bearerToken(t, "a1", domain.RoleUser)
	profile := &domain.Profile{
		ID:       uuid.New().String(),
		Name:     "Alice",
		Category: domain.CategoryAdultFemale,
	}

	m.profiles.EXPECT().Create(mock.Anything, "a1", mock.Anything).Return(profile, nil)
	w := doJSON(r, http.MethodPost, "/api/profiles", auth, dto.CreateProfileRequest{
		Name:     "Alice",
		Category: string(domain.CategoryAdultFemale),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	m.profiles.EXPECT().Get(mock.Anything, "a1", profile.ID).Return(profile, nil)
	w = doJSON(r, http.MethodGet, "/api/profiles/"+profile.ID, auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	m.profiles.EXPECT().Delete(mock.Anything, "a1", profile.ID).Return(domain.ErrProfileHasTickets)
	w = doJSON(r, http.MethodDelete, "/api/profiles/"+profile.ID, auth, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
