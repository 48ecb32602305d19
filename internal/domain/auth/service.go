package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Service handles phone-login and token verification.
type Service struct {
	repo      UserRepo
	jwtSecret []byte
	tokenTTL  time.Duration
	clock     clockwork.Clock
}

// NewService creates the auth service.
func NewService(repo UserRepo, jwtSecret string, tokenTTL time.Duration, clock clockwork.Clock) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		clock:     clock,
	}
}

// LoginResult bundles the token and user returned after a login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PhoneLogin authenticates by phone number, creating the user on first
// login. For existing users a supplied password must match; an empty
// password is accepted for the demo flow.
func (s *Service) PhoneLogin(ctx context.Context, phone, password string) (LoginResult, error) {
	if !phonePattern.MatchString(phone) {
		return LoginResult{}, ErrMalformedPhone
	}

	user, err := s.repo.GetUserByPhone(ctx, phone)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: get user by phone: %w", err)
	}

	if user == nil {
		user, err = s.createUser(ctx, phone, password)
		if errors.Is(err, ErrPhoneTaken) {
			// Lost a concurrent first-login race; the row exists now.
			user, err = s.repo.GetUserByPhone(ctx, phone)
			if err == nil && user == nil {
				err = fmt.Errorf("auth: user missing after conflict: %w", ErrPhoneTaken)
			}
		}
		if err != nil {
			return LoginResult{}, err
		}
	} else if password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return LoginResult{}, ErrInvalidCredentials
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return LoginResult{Token: token, User: *user}, nil
}

// VerifyToken validates a JWT and returns the user ID and phone claims.
func (s *Service) VerifyToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	phone, ok := claims["phone"].(string)
	if !ok {
		return 0, "", fmt.Errorf("%w: missing phone claim", ErrInvalidToken)
	}

	return int64(userID), phone, nil
}

func (s *Service) createUser(ctx context.Context, phone, password string) (*User, error) {
	// Demo flow: logins without a password get a generated one.
	if password == "" {
		password = "temp_" + uuid.NewString()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, NewUser{
		Phone:        phone,
		Name:         "User " + phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("auth: create user: %w", err)
	}
	return user, nil
}

func (s *Service) generateToken(user *User) (string, error) {
	now := s.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"phone":   user.Phone,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
