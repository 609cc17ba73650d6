package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/identity"
)

// RegisterInput contains input for account registration
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// LoginInput contains input for login
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput contains the token identifiers to revoke
type LogoutInput struct {
	UserID   uuid.UUID
	JTI      string
	TokenTTL time.Duration
}

// UpdateProfileInput contains editable profile fields
type UpdateProfileInput struct {
	UserID  uuid.UUID
	Name    string
	Phone   string
	Address string
}

// ChangePasswordInput contains input for a password change
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// UserDTO is the public view of an account
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// AuthResult is returned from register and login
type AuthResult struct {
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
	TokenType             string    `json:"tokenType"`
	User                  UserDTO   `json:"user"`
}

// ToUserDTO converts a user to its public view
func ToUserDTO(user *identity.User) UserDTO {
	return UserDTO{
		ID:        user.GetID().String(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.GetCreatedAt().Format(time.RFC3339),
	}
}
