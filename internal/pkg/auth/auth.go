// Package auth checks the admin credentials and issues session tokens.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminRole = "admin"
	issuer    = "bakery"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// HashPassword returns the bcrypt hash stored in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Claims are carried by every admin token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Token is a signed session token and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Authenticator holds the single configured admin account.
type Authenticator struct {
	email        string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewAuthenticator(email, passwordHash, secret string, ttl time.Duration) (*Authenticator, error) {
	var errList []error
	if strings.TrimSpace(email) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("admin email"))
	}
	if passwordHash == "" {
		errList = append(errList, errs.NewValueIsRequiredError("admin password hash"))
	}
	if secret == "" {
		errList = append(errList, errs.NewValueIsRequiredError("jwt secret"))
	}
	if ttl <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, time.Second, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Authenticator{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login compares the credentials and signs a new token. Wrong email and
// wrong password are reported the same way.
func (a *Authenticator) Login(email, password string) (Token, error) {
	if strings.ToLower(strings.TrimSpace(email)) != a.email {
		return Token{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return Token{}, ErrInvalidCredentials
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := Claims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   a.email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses a token produced by Login.
func (a *Authenticator) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != adminRole {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
