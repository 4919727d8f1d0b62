package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/zachsplat/tournament-backend-new/internal/domain"
	"github.com/zachsplat/tournament-backend-new/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

// AccountService is the admin-facing account management surface.
type AccountService struct {
	accountRepo ports.AccountRepo
}

func NewAccountService(accountRepo ports.AccountRepo) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) List(ctx context.Context, search string, page, limit int) ([]*domain.Account, int, error) {
	return s.accountRepo.List(ctx, search, page, limit)
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

func (s *AccountService) Update(ctx context.Context, id string, input domain.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
		}
		account.Email = *input.Email
	}
	if input.Password != nil {
		if len(*input.Password) < minPassword {
			return nil, fmt.Errorf("%w: password must be at least %d characters long", domain.ErrValidation, minPassword)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		account.PasswordHash = string(hash)
	}
	if input.Role != nil {
		if *input.Role != domain.RoleUser && *input.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: role must be either user or admin", domain.ErrValidation)
		}
		account.Role = *input.Role
	}

	if err = s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.accountRepo.Delete(ctx, id)
}
