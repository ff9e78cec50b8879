package domain

import "context"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Role           string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUserName(ctx context.Context, username string) (*User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
