package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports/mocks"
	"github.com/zachsplat/tournament-backend-new/internal/token"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTicketService(t *testing.T) (*TicketService, *mocks.MockTicketRepo, *mocks.MockProfileRepo, *mocks.MockTournamentRepo, *mocks.MockOrphanRepo, *mocks.MockPaymentProvider) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	profileRepo := mocks.NewMockProfileRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	orphanRepo := mocks.NewMockOrphanRepo(t)
	payments := mocks.NewMockPaymentProvider(t)

	svc := NewTicketService(
		ticketRepo, profileRepo, tournamentRepo, orphanRepo,
		payments, token.NewCodec("test-secret"), newTestLogger(t),
	)
	return svc, ticketRepo, profileRepo, tournamentRepo, orphanRepo, payments
}

func TestTicketService_Purchase(t *testing.T) {
	svc, ticketRepo, profileRepo, tournamentRepo, _, payments := newTicketService(t)

	profile := &domain.Profile{ID: "p1", AccountID: "a1", Name: "Alice"}
	tournament := &domain.Tournament{ID: "t1", Name: "Spring Open", MaxTickets: 10, Price: 2500}

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(profile, nil)
	tournamentRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tournament, nil)
	payments.EXPECT().Charge(mock.Anything, int64(2500), "usd", "pm_card").Return("pi_123", nil)
	ticketRepo.EXPECT().Purchase(mock.Anything, "p1", "t1", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, profileID, tournamentID string, charge ports.ChargeFunc, mint ports.MintFunc) (*domain.Ticket, error) {
			ref, err := charge(ctx, 2500)
			require.NoError(t, err)

			id := uuid.New().String()
			qr, err := mint(id)
			require.NoError(t, err)

			return &domain.Ticket{
				ID:           id,
				ProfileID:    profileID,
				TournamentID: tournamentID,
				QRCode:       qr,
				Status:       domain.TicketStatusPurchased,
				PaymentRef:   ref,
			}, nil
		})

	ticket, err := svc.Purchase(context.Background(), "a1", "p1", "t1", "pm_card")

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusPurchased, ticket.Status)
	assert.Equal(t, "pi_123", ticket.PaymentRef)
	assert.NotEmpty(t, ticket.QRCode)
}

func TestTicketService_Purchase_ForeignProfile(t *testing.T) {
	svc, _, profileRepo, _, _, _ := newTicketService(t)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "intruder").Return(nil, domain.ErrProfileNotFound)

	_, err := svc.Purchase(context.Background(), "intruder", "p1", "t1", "pm_card")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTicketService_Purchase_SoldOut(t *testing.T) {
	svc, ticketRepo, profileRepo, tournamentRepo, _, _ := newTicketService(t)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(&domain.Profile{ID: "p1"}, nil)
	tournamentRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tournament{ID: "t1"}, nil)
	ticketRepo.EXPECT().Purchase(mock.Anything, "p1", "t1", mock.Anything, mock.Anything).
		Return(nil, domain.ErrSoldOut)

	_, err := svc.Purchase(context.Background(), "a1", "p1", "t1", "pm_card")

	// Capacity is checked before the charge, so nothing was captured
	// and nothing needs refunding.
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}

func TestTicketService_Purchase_PaymentDeclined(t *testing.T) {
	svc, ticketRepo, profileRepo, tournamentRepo, _, payments := newTicketService(t)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(&domain.Profile{ID: "p1"}, nil)
	tournamentRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tournament{ID: "t1", Price: 2500}, nil)
	payments.EXPECT().Charge(mock.Anything, int64(2500), "usd", "pm_card").
		Return("", domain.ErrPayment)
	ticketRepo.EXPECT().Purchase(mock.Anything, "p1", "t1", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, profileID, tournamentID string, charge ports.ChargeFunc, mint ports.MintFunc) (*domain.Ticket, error) {
			if _, err := charge(ctx, 2500); err != nil {
				return nil, err
			}
			t.Fatal("purchase continued past a declined charge")
			return nil, nil
		})

	_, err := svc.Purchase(context.Background(), "a1", "p1", "t1", "pm_card")

	assert.ErrorIs(t, err, domain.ErrPayment)
}

func TestTicketService_Purchase_OrphanedChargeRecorded(t *testing.T) {
	svc, ticketRepo, profileRepo, tournamentRepo, orphanRepo, payments := newTicketService(t)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(&domain.Profile{ID: "p1"}, nil)
	tournamentRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tournament{ID: "t1", Price: 2500}, nil)
	payments.EXPECT().Charge(mock.Anything, int64(2500), "usd", "pm_card").Return("pi_123", nil)
	ticketRepo.EXPECT().Purchase(mock.Anything, "p1", "t1", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, profileID, tournamentID string, charge ports.ChargeFunc, mint ports.MintFunc) (*domain.Ticket, error) {
			if _, err := charge(ctx, 2500); err != nil {
				return nil, err
			}
			return nil, errors.New("commit failed")
		})

	orphanRepo.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, charge *domain.OrphanedCharge) error {
			assert.Equal(t, "pi_123", charge.PaymentRef)
			assert.Equal(t, int64(2500), charge.Amount)
			return nil
		})

	_, err := svc.Purchase(context.Background(), "a1", "p1", "t1", "pm_card")

	require.Error(t, err)
}

// capacityTicketRepo is a serialized in-memory stand-in for the
// row-locked purchase transaction.
type capacityTicketRepo struct {
	ports.TicketRepo
	mu       sync.Mutex
	capacity int
	sold     int
}

func (r *capacityTicketRepo) Purchase(ctx context.Context, profileID, tournamentID string, charge ports.ChargeFunc, mint ports.MintFunc) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sold >= r.capacity {
		return nil, domain.ErrSoldOut
	}

	ref, err := charge(ctx, 2500)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	qr, err := mint(id)
	if err != nil {
		return nil, err
	}

	r.sold++
	return &domain.Ticket{
		ID:           id,
		ProfileID:    profileID,
		TournamentID: tournamentID,
		QRCode:       qr,
		Status:       domain.TicketStatusPurchased,
		PaymentRef:   ref,
	}, nil
}

func TestTicketService_Purchase_NeverOversells(t *testing.T) {
	const capacity = 5
	const buyers = 20

	profileRepo := mocks.NewMockProfileRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	orphanRepo := mocks.NewMockOrphanRepo(t)
	payments := mocks.NewMockPaymentProvider(t)
	repo := &capacityTicketRepo{capacity: capacity}

	svc := NewTicketService(
		repo, profileRepo, tournamentRepo, orphanRepo,
		payments, token.NewCodec("test-secret"), newTestLogger(t),
	)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(&domain.Profile{ID: "p1"}, nil)
	tournamentRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tournament{ID: "t1", MaxTickets: capacity, Price: 2500}, nil)
	payments.EXPECT().Charge(mock.Anything, int64(2500), "usd", "pm_card").Return("pi_ok", nil)

	var wg sync.WaitGroup
	errs := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Purchase(context.Background(), "a1", "p1", "t1", "pm_card")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var sold, rejected int
	for err := range errs {
		switch {
		case err == nil:
			sold++
		case errors.Is(err, domain.ErrSoldOut):
			rejected++
		default:
			t.Fatalf("unexpected purchase error: %v", err)
		}
	}

	assert.Equal(t, capacity, sold)
	assert.Equal(t, buyers-capacity, rejected)
	assert.Equal(t, capacity, repo.sold)
}

func TestTicketService_Cancel(t *testing.T) {
	svc, ticketRepo, profileRepo, _, _, payments := newTicketService(t)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(&domain.Profile{ID: "p1"}, nil)
	ticketRepo.EXPECT().GetOwned(mock.Anything, "tk1", "p1").
		Return(&domain.Ticket{ID: "tk1", Status: domain.TicketStatusPurchased, PaymentRef: "pi_123"}, nil)
	payments.EXPECT().Refund(mock.Anything, "pi_123").Return(nil)
	ticketRepo.EXPECT().Cancel(mock.Anything, "tk1", mock.Anything).
		RunAndReturn(func(ctx context.Context, ticketID string, refund ports.RefundFunc) error {
			return refund(ctx, "pi_123")
		})

	err := svc.Cancel(context.Background(), "a1", "p1", "tk1")

	require.NoError(t, err)
}

func TestTicketService_Cancel_RefundFailureKeepsTicket(t *testing.T) {
	svc, ticketRepo, profileRepo, _, _, payments := newTicketService(t)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(&domain.Profile{ID: "p1"}, nil)
	ticketRepo.EXPECT().GetOwned(mock.Anything, "tk1", "p1").
		Return(&domain.Ticket{ID: "tk1", Status: domain.TicketStatusPurchased, PaymentRef: "pi_123"}, nil)
	payments.EXPECT().Refund(mock.Anything, "pi_123").Return(domain.ErrRefundFailed)
	ticketRepo.EXPECT().Cancel(mock.Anything, "tk1", mock.Anything).
		RunAndReturn(func(ctx context.Context, ticketID string, refund ports.RefundFunc) error {
			// The repository rolls back unless the refund succeeds.
			return refund(ctx, "pi_123")
		})

	err := svc.Cancel(context.Background(), "a1", "p1", "tk1")

	assert.ErrorIs(t, err, domain.ErrRefundFailed)
}

func TestTicketService_Cancel_NotOwned(t *testing.T) {
	svc, ticketRepo, profileRepo, _, _, _ := newTicketService(t)

	profileRepo.EXPECT().GetOwned(mock.Anything, "p1", "a1").Return(&domain.Profile{ID: "p1"}, nil)
	ticketRepo.EXPECT().GetOwned(mock.Anything, "tk9", "p1").Return(nil, domain.ErrTicketNotFound)

	err := svc.Cancel(context.Background(), "a1", "p1", "tk9")

	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketService_SweepOrphanedCharges(t *testing.T) {
	svc, _, _, _, orphanRepo, payments := newTicketService(t)

	orphans := []*domain.OrphanedCharge{
		{ID: "o1", PaymentRef: "pi_1"},
		{ID: "o2", PaymentRef: "pi_2"},
	}
	orphanRepo.EXPECT().ListUnresolved(mock.Anything, orphanBatch).Return(orphans, nil)
	payments.EXPECT().Refund(mock.Anything, "pi_1").Return(nil)
	payments.EXPECT().Refund(mock.Anything, "pi_2").Return(domain.ErrRefundFailed)
	orphanRepo.EXPECT().MarkResolved(mock.Anything, "o1").Return(nil)

	resolved, err := svc.SweepOrphanedCharges(context.Background())

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "o1", resolved[0].ID)
}
