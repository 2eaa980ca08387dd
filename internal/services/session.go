package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of a session cookie. Subject holds the user id.
type SessionClaims struct {
	jwt.RegisteredClaims
}

func (c *SessionClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid session subject %q", c.Subject)
	}
	return uint(id), nil
}

// SessionCodec issues and verifies HS256 session tokens.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionCodec returns a codec signing with secret. A zero ttl issues tokens
// without an expiry.
func NewSessionCodec(secret string, ttl time.Duration) (*SessionCodec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret required")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &SessionCodec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (c *SessionCodec) TTL() time.Duration { return c.ttl }

func (c *SessionCodec) Issue(userID uint) (string, *SessionClaims, error) {
	now := c.now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(uint64(userID), 10),
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session: %w", err)
	}
	return token, claims, nil
}

func (c *SessionCodec) Parse(token string) (*SessionClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("empty session token")
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	claims := &SessionClaims{}
	tok, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// SessionRevoker tracks logged-out session ids.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type noopRevoker struct{}

func (noopRevoker) Revoke(context.Context, string, time.Duration) error { return nil }
func (noopRevoker) IsRevoked(context.Context, string) (bool, error)     { return false, nil }
