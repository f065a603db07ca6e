package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/espranza/server/internal/helpers"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthService gates the admin panel behind a single shared secret. On a
// match it issues a signed, time-limited session token rather than a
// fixed literal.
type AuthService struct {
	password  string
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(password string, jwtSecret []byte) *AuthService {
	return &AuthService{
		password:  password,
		jwtSecret: jwtSecret,
		tokenTTL:  12 * time.Hour,
	}
}

func (as *AuthService) Login(password string) (string, error) {
	if as.password == "" {
		return "", fmt.Errorf("admin password is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(as.password)) != 1 {
		return "", ErrInvalidPassword
	}

	token, err := helpers.SignAdminToken(as.jwtSecret, as.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %v", err)
	}
	return token, nil
}

func (as *AuthService) ValidateToken(token string) (*helpers.AdminClaims, error) {
	return helpers.ValidateAdminToken(token, as.jwtSecret)
}
