package dto

import (
	"time"

	"atomichabits/internal/domain/user"
)

// UserDTO is the API representation of a user account. The password hash
// never leaves the application layer.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthTokensDTO carries an issued access/refresh token pair.
type AuthTokensDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ToUserDTO converts a user aggregate to its API representation.
func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}
