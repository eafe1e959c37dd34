// Package auth verifies submitted credentials and issues the session
// token the presentation layer carries afterwards.
package auth

import (
	"context"
	"errors"
	"time"

	"invoice-dashboard-backend/internal/apperr"
	"invoice-dashboard-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultRedirect is the landing page when no callback is supplied.
const DefaultRedirect = "/dashboard"

// ErrInvalidCredentials covers both an unknown email and a password
// mismatch, so login responses never reveal which one it was. Any
// other failure propagates as-is.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Session struct {
	Token      string    `json:"token"`
	RedirectTo string    `json:"redirect_to"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type Service struct {
	users      UserReader
	secret     []byte
	expiration time.Duration
	log        *zap.Logger
}

func NewService(users UserReader, secret string, expiration time.Duration, log *zap.Logger) *Service {
	return &Service{
		users:      users,
		secret:     []byte(secret),
		expiration: expiration,
		log:        log,
	}
}

// Authenticate checks the credential pair and, on success, returns a
// signed session token plus the destination to redirect to.
func (s *Service) Authenticate(ctx context.Context, email, password, callbackURL string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.Info("login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.expiration)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: user.Email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	redirectTo := callbackURL
	if redirectTo == "" {
		redirectTo = DefaultRedirect
	}
	return &Session{Token: token, RedirectTo: redirectTo, ExpiresAt: expiresAt}, nil
}
