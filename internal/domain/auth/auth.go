// Package auth implements the demo phone-login identity layer: users are
// created on first login by phone number and receive HMAC-signed JWTs.
package auth

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source auth.go -destination mock_repo.go -package auth

var (
	// ErrInvalidCredentials signals a wrong password for an existing user.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken signals a token that failed verification.
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrMalformedPhone signals a phone number that fails validation.
	ErrMalformedPhone = errors.New("auth: malformed phone number")

	// ErrPhoneTaken signals an insert that lost a first-login race: the
	// phone is already registered.
	ErrPhoneTaken = errors.New("auth: phone already registered")
)

// User is a registered filer identity.
type User struct {
	ID           int64     `json:"id"`
	Phone        string    `json:"phone"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser contains write parameters for creating users.
type NewUser struct {
	Phone        string
	Name         string
	PasswordHash string
}

// UserRepo is the persistence port for users.
type UserRepo interface {
	CreateUser(ctx context.Context, user NewUser) (*User, error)
	GetUserByPhone(ctx context.Context, phone string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}
