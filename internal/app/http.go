package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apphttp "github.com/yungbote/quizhub-backend/internal/http"
	httpH "github.com/yungbote/quizhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/quizhub-backend/internal/http/middleware"
	"github.com/yungbote/quizhub-backend/internal/observability"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

const serviceName = "quizhub"

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health *httpH.HealthHandler
	Quiz   *httpH.QuizHandler
	User   *httpH.UserHandler
}

func wireMiddleware(log *logger.Logger, cfg Config, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth, cfg.CookieName),
	}
}

func wireHandlers(log *logger.Logger, db *gorm.DB, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(db),
		Quiz:   httpH.NewQuizHandler(log, services.Quiz),
		User: httpH.NewUserHandler(log, services.Auth, httpH.CookieConfig{
			Name:   cfg.CookieName,
			Secure: cfg.SecureCookies,
		}),
	}
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	return apphttp.NewRouter(apphttp.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		ServiceName:    serviceName,
		AllowedOrigins: cfg.AllowedOrigins,
		AuthMiddleware: middleware.Auth,
		QuizHandler:    handlers.Quiz,
		UserHandler:    handlers.User,
		HealthHandler:  handlers.Health,
	})
}
