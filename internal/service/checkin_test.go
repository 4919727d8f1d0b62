package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports/mocks"
	"github.com/zachsplat/tournament-backend-new/internal/token"
)

func TestCheckinService_Scan(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	codec := token.NewCodec("test-secret")
	svc := NewCheckinService(ticketRepo, codec, newTestLogger(t))

	qr, err := codec.Encode("tk1")
	require.NoError(t, err)

	ticketRepo.EXPECT().GetCheckinDetails(mock.Anything, "tk1").
		Return(&domain.CheckinDetails{
			TicketID:       "tk1",
			Status:         domain.TicketStatusPurchased,
			ProfileName:    "Alice",
			TournamentName: "Spring Open",
		}, nil)
	ticketRepo.EXPECT().CheckIn(mock.Anything, "tk1").Return(nil)

	details, err := svc.Scan(context.Background(), qr)

	require.NoError(t, err)
	assert.Equal(t, "tk1", details.TicketID)
	assert.Equal(t, domain.TicketStatusCheckedIn, details.Status)
	assert.Equal(t, "Alice", details.ProfileName)
	assert.Equal(t, "Spring Open", details.TournamentName)
}

func TestCheckinService_Scan_Replay(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	codec := token.NewCodec("test-secret")
	svc := NewCheckinService(ticketRepo, codec, newTestLogger(t))

	qr, err := codec.Encode("tk1")
	require.NoError(t, err)

	ticketRepo.EXPECT().GetCheckinDetails(mock.Anything, "tk1").
		Return(&domain.CheckinDetails{TicketID: "tk1", Status: domain.TicketStatusCheckedIn}, nil)
	ticketRepo.EXPECT().CheckIn(mock.Anything, "tk1").Return(domain.ErrAlreadyCheckedIn)

	_, err = svc.Scan(context.Background(), qr)

	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestCheckinService_Scan_CanceledTicket(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	codec := token.NewCodec("test-secret")
	svc := NewCheckinService(ticketRepo, codec, newTestLogger(t))

	qr, err := codec.Encode("tk1")
	require.NoError(t, err)

	ticketRepo.EXPECT().GetCheckinDetails(mock.Anything, "tk1").
		Return(&domain.CheckinDetails{TicketID: "tk1", Status: domain.TicketStatusCanceled}, nil)
	ticketRepo.EXPECT().CheckIn(mock.Anything, "tk1").Return(domain.ErrTicketCanceled)

	_, err = svc.Scan(context.Background(), qr)

	assert.ErrorIs(t, err, domain.ErrTicketCanceled)
}

func TestCheckinService_Scan_InvalidToken(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	svc := NewCheckinService(ticketRepo, token.NewCodec("test-secret"), newTestLogger(t))

	// Signed with a different secret, so verification must fail
	// before any repository call.
	qr, err := token.NewCodec("other-secret").Encode("tk1")
	require.NoError(t, err)

	_, err = svc.Scan(context.Background(), qr)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCheckinService_Scan_UnknownTicket(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	codec := token.NewCodec("test-secret")
	svc := NewCheckinService(ticketRepo, codec, newTestLogger(t))

	qr, err := codec.Encode("ghost")
	require.NoError(t, err)

	ticketRepo.EXPECT().GetCheckinDetails(mock.Anything, "ghost").Return(nil, domain.ErrTicketNotFound)

	_, err = svc.Scan(context.Background(), qr)

	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}
