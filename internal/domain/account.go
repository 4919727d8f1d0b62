package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Account struct {
	ID           string    `json:"account_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller attached by the auth middleware.
type Identity struct {
	AccountID string
	Role      Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type RegisterInput struct {
	Email    string
	Password string
}

type UpdateAccountInput struct {
	Email    *string
	Password *string
	Role     *Role
}
