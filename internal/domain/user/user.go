package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"atomichabits/internal/shared/biztime"
)

// User represents the user aggregate root. Habits belong to exactly one user
// and are deleted with them.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with a pre-hashed password.
func NewUser(username, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid email address: %w", err)
		}
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, username, email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Getters
func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) {
	u.id = id
}
