package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports/mocks"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAuthService(accountRepo, "jwt-secret", 8*time.Hour, newTestLogger(t))

	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	account, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, domain.RoleUser, account.Role)
	assert.NotEmpty(t, account.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("correct horse")))
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAuthService(accountRepo, "jwt-secret", 8*time.Hour, newTestLogger(t))

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "not-an-email",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAuthService(accountRepo, "jwt-secret", 8*time.Hour, newTestLogger(t))

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAuthService(accountRepo, "jwt-secret", 8*time.Hour, newTestLogger(t))

	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAuthService(accountRepo, "jwt-secret", 8*time.Hour, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	accountRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
		Return(&domain.Account{
			ID:           "a1",
			Email:        "alice@example.com",
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
		}, nil)

	signed, account, err := svc.Login(context.Background(), "alice@example.com", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, "a1", account.ID)

	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("jwt-secret"), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "a1", claims["account_id"])
	assert.Equal(t, string(domain.RoleAdmin), claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), exp.Time, time.Minute)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAuthService(accountRepo, "jwt-secret", 8*time.Hour, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	accountRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").
		Return(&domain.Account{ID: "a1", PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAuthService(accountRepo, "jwt-secret", 8*time.Hour, newTestLogger(t))

	accountRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").
		Return(nil, domain.ErrAccountNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	// Same answer as a wrong password.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
