package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/quizhub-backend/internal/clients/redis"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
	"github.com/yungbote/quizhub-backend/internal/services"
)

type Clients struct {
	Redis   *goredis.Client
	Revoker services.SessionRevoker
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set; logged-out sessions are not revoked server-side")
		return Clients{}, nil
	}
	rdb, err := redis.NewClient(ctx, cfg.RedisAddr)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis: %w", err)
	}
	revoker, err := redis.NewSessionRevoker(log, rdb)
	if err != nil {
		_ = rdb.Close()
		return Clients{}, fmt.Errorf("init session revoker: %w", err)
	}
	return Clients{Redis: rdb, Revoker: revoker}, nil
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
