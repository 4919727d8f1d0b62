package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports/mocks"
)

func adultMales(n int) []domain.CheckedInPlayer {
	players := make([]domain.CheckedInPlayer, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, domain.CheckedInPlayer{
			ProfileID: string(rune('a' + i)),
			Name:      "Player " + string(rune('A'+i)),
			Category:  domain.CategoryAdultMale,
		})
	}
	return players
}

func TestBracketService_Generate(t *testing.T) {
	bracketRepo := mocks.NewMockBracketRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	svc := NewBracketService(bracketRepo, ticketRepo, tournamentRepo, newTestLogger(t))

	tournamentRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tournament{ID: "t1"}, nil)
	ticketRepo.EXPECT().ListCheckedInPlayers(mock.Anything, "t1").Return(adultMales(5), nil)
	bracketRepo.EXPECT().Upsert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Bracket) (*domain.Bracket, error) {
			b.ID = "b1"
			return b, nil
		})

	bracket, err := svc.Generate(context.Background(), "t1")

	require.NoError(t, err)
	require.Contains(t, bracket.Data, string(domain.CategoryAdultMale))

	rounds := bracket.Data[string(domain.CategoryAdultMale)].Rounds
	require.Len(t, rounds, 3)
	assert.Len(t, rounds[0].Matches, 3)
	assert.Len(t, rounds[1].Matches, 2)
	assert.Len(t, rounds[2].Matches, 1)
}

func TestBracketService_Generate_TooFewPlayers(t *testing.T) {
	bracketRepo := mocks.NewMockBracketRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	svc := NewBracketService(bracketRepo, ticketRepo, tournamentRepo, newTestLogger(t))

	tournamentRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tournament{ID: "t1"}, nil)
	ticketRepo.EXPECT().ListCheckedInPlayers(mock.Anything, "t1").Return(adultMales(1), nil)

	_, err := svc.Generate(context.Background(), "t1")

	assert.ErrorIs(t, err, domain.ErrInsufficientPlayers)
}

func TestBracketService_Generate_TournamentNotFound(t *testing.T) {
	bracketRepo := mocks.NewMockBracketRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	svc := NewBracketService(bracketRepo, ticketRepo, tournamentRepo, newTestLogger(t))

	tournamentRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTournamentNotFound)

	_, err := svc.Generate(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTournamentNotFound)
}

func TestBuildBracketData_PartitionsByCategory(t *testing.T) {
	players := []domain.CheckedInPlayer{
		{ProfileID: "m1", Name: "M1", Category: domain.CategoryAdultMale},
		{ProfileID: "m2", Name: "M2", Category: domain.CategoryAdultMale},
		{ProfileID: "m3", Name: "M3", Category: domain.CategoryAdultMale},
		{ProfileID: "f1", Name: "F1", Category: domain.CategoryAdultFemale},
		{ProfileID: "f2", Name: "F2", Category: domain.CategoryAdultFemale},
		{ProfileID: "y1", Name: "Y1", Category: domain.CategoryYouth},
	}

	data := buildBracketData(players, rand.New(rand.NewSource(1)))

	require.Contains(t, data, string(domain.CategoryAdultMale))
	require.Contains(t, data, string(domain.CategoryAdultFemale))
	// A single youth has nobody to play.
	assert.NotContains(t, data, string(domain.CategoryYouth))
	assert.Len(t, data, 2)

	female := data[string(domain.CategoryAdultFemale)].Rounds
	require.Len(t, female, 1)
	require.Len(t, female[0].Matches, 1)
	assert.NotNil(t, female[0].Matches[0].Player1)
	assert.NotNil(t, female[0].Matches[0].Player2)
	assert.Nil(t, female[0].Matches[0].Winner)
}

func TestBuildCategoryBracket_OddPlayerGetsBye(t *testing.T) {
	bracket := buildCategoryBracket(adultMales(5), rand.New(rand.NewSource(1)))

	round1 := bracket.Rounds[0]
	require.Len(t, round1.Matches, 3)

	byes := 0
	seen := make(map[string]bool)
	for _, m := range round1.Matches {
		require.NotNil(t, m.Player1)
		seen[m.Player1.ProfileID] = true
		if m.Player2 == nil {
			byes++
		} else {
			seen[m.Player2.ProfileID] = true
		}
	}

	assert.Equal(t, 1, byes)
	assert.Len(t, seen, 5, "every player appears exactly once in round 1")
}

func TestBuildCategoryBracket_LaterRoundsEmpty(t *testing.T) {
	bracket := buildCategoryBracket(adultMales(8), rand.New(rand.NewSource(1)))

	require.Len(t, bracket.Rounds, 3)
	assert.Len(t, bracket.Rounds[0].Matches, 4)
	for _, round := range bracket.Rounds[1:] {
		for _, m := range round.Matches {
			assert.Nil(t, m.Player1)
			assert.Nil(t, m.Player2)
			assert.Nil(t, m.Winner)
		}
	}
}

func TestBuildCategoryBracket_TwoPlayers(t *testing.T) {
	bracket := buildCategoryBracket(adultMales(2), rand.New(rand.NewSource(1)))

	require.Len(t, bracket.Rounds, 1)
	require.Len(t, bracket.Rounds[0].Matches, 1)
	assert.NotNil(t, bracket.Rounds[0].Matches[0].Player1)
	assert.NotNil(t, bracket.Rounds[0].Matches[0].Player2)
}

func TestBracketService_Update(t *testing.T) {
	bracketRepo := mocks.NewMockBracketRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	svc := NewBracketService(bracketRepo, ticketRepo, tournamentRepo, newTestLogger(t))

	data := domain.BracketData{
		string(domain.CategoryAdultMale): {Rounds: []domain.BracketRound{{Round: 1}}},
	}

	bracketRepo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Bracket{ID: "b1"}, nil)
	bracketRepo.EXPECT().UpdateData(mock.Anything, "b1", data).
		Return(&domain.Bracket{ID: "b1", TournamentID: "t1", Data: data}, nil)

	bracket, err := svc.Update(context.Background(), "b1", data)

	require.NoError(t, err)
	assert.Equal(t, data, bracket.Data)
}

func TestBracketService_Update_EmptyData(t *testing.T) {
	bracketRepo := mocks.NewMockBracketRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	svc := NewBracketService(bracketRepo, ticketRepo, tournamentRepo, newTestLogger(t))

	_, err := svc.Update(context.Background(), "b1", domain.BracketData{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBracketService_Update_NotFound(t *testing.T) {
	bracketRepo := mocks.NewMockBracketRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	tournamentRepo := mocks.NewMockTournamentRepo(t)
	svc := NewBracketService(bracketRepo, ticketRepo, tournamentRepo, newTestLogger(t))

	bracketRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBracketNotFound)

	data := domain.BracketData{
		string(domain.CategoryAdultMale): {Rounds: []domain.BracketRound{{Round: 1}}},
	}
	_, err := svc.Update(context.Background(), "missing", data)

	assert.ErrorIs(t, err, domain.ErrBracketNotFound)
}
