package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

const defaultKeyPrefix = "quizhub:session:revoked:"

// NewClient dials addr and pings it once before returning.
func NewClient(ctx context.Context, addr string) (*goredis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// SessionRevoker remembers logged-out session ids. An entry lives exactly as
// long as the token it blocks could still be presented.
type SessionRevoker struct {
	log    *logger.Logger
	rdb    goredis.UniversalClient
	prefix string
}

func NewSessionRevoker(log *logger.Logger, rdb goredis.UniversalClient) (*SessionRevoker, error) {
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionRevoker{
		log:    log.With("service", "RedisSessionRevoker"),
		rdb:    rdb,
		prefix: defaultKeyPrefix,
	}, nil
}

func (s *SessionRevoker) key(sessionID string) string {
	return s.prefix + sessionID
}

// Revoke marks sessionID as logged out until its token expires. ttl is the
// token's remaining lifetime; a non-positive ttl means the token never expires,
// so the entry is kept without expiry.
func (s *SessionRevoker) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.rdb.Set(ctx, s.key(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionRevoker) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false, nil
	}
	err := s.rdb.Get(ctx, s.key(sessionID)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, goredis.Nil):
		return false, nil
	default:
		s.log.Warn("session revocation lookup failed", "error", err)
		return false, fmt.Errorf("lookup revoked session: %w", err)
	}
}
