// Package token issues and validates the signed bearer credentials used by
// the API. Tokens are HS256 JWTs carrying the subject email, the user role
// and a fixed expiry window.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for every validation failure. Callers must not be
// able to tell a forged token from an expired one.
var ErrInvalid = errors.New("invalid token")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a process-wide symmetric secret,
// loaded once at startup. Safe for concurrent use.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given identity, expiring ttl after now.
func (m *Manager) Issue(email, role string, now time.Time) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate parses and verifies a raw token against the signing secret and
// the clock. It never consults storage; resolving the email to a current
// user row is the caller's job.
func (m *Manager) Validate(raw string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return now }))

	if err != nil || !parsed.Valid {
		return nil, ErrInvalid
	}
	// No grace period: a token is dead the instant it expires.
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return nil, ErrInvalid
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}
