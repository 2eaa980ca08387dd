package app

import (
	"time"

	"github.com/yungbote/quizhub-backend/internal/data/db"
	"github.com/yungbote/quizhub-backend/internal/http/middleware"
	"github.com/yungbote/quizhub-backend/internal/platform/envutil"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
	"github.com/yungbote/quizhub-backend/internal/services"
)

const defaultSessionSecret = "defaultsecret"

type Config struct {
	Port        string
	LogMode     string
	Environment string
	Version     string

	DB db.Config

	SessionSecret  string
	SessionTTL     time.Duration
	CookieName     string
	SecureCookies  bool
	PasswordHasher string
	LandingLimit   int

	RedisAddr      string
	AllowedOrigins []string
	MetricsAddr    string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),

		DB: db.ConfigFromEnv(),

		SessionSecret:  envutil.String("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:     envutil.Seconds("SESSION_TTL_SECONDS", 0),
		CookieName:     envutil.String("SESSION_COOKIE_NAME", "quiz_session"),
		SecureCookies:  envutil.Bool("SECURE_COOKIES", false),
		PasswordHasher: envutil.String("PASSWORD_HASHER", services.HasherSHA3),
		LandingLimit:   envutil.Int("LANDING_LIMIT", 6),

		RedisAddr:      envutil.String("REDIS_ADDR", ""),
		AllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS", middleware.DefaultAllowedOrigins),
		MetricsAddr:    envutil.String("METRICS_ADDR", ""),
	}
	if log != nil && cfg.SessionSecret == defaultSessionSecret {
		log.Warn("SESSION_SECRET not set; using the development default")
	}
	return cfg
}
