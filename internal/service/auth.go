package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost  = 12
	minPassword = 8
)

type AuthService struct {
	accountRepo ports.AccountRepo
	jwtSecret   []byte
	tokenTTL    time.Duration
	logger      logger.Logger
}

func NewAuthService(accountRepo ports.AccountRepo, jwtSecret string, tokenTTL time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if len(input.Password) < minPassword {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err = s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account registered",
		logger.String("account_id", account.ID),
	)

	return account, nil
}

// Login verifies credentials and issues a signed bearer token
// carrying the caller identity. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": account.ID,
		"role":       string(account.Role),
		"iat":        now.Unix(),
		"exp":        now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("account logged in",
		logger.String("account_id", account.ID),
	)

	return signed, account, nil
}
