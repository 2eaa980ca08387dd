package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/quizhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/quizhub-backend/internal/http/middleware"
	"github.com/yungbote/quizhub-backend/internal/observability"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware
	QuizHandler    *httpH.QuizHandler
	UserHandler    *httpH.UserHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics, "/healthcheck", "/metrics"))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))
	if cfg.AuthMiddleware != nil {
		r.Use(cfg.AuthMiddleware.RestoreSession())
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")

	// Quizzes (public)
	if cfg.QuizHandler != nil {
		api.GET("/quizzes", cfg.QuizHandler.Landing)
		api.GET("/quizzes/browse", cfg.QuizHandler.Browse)
		api.GET("/quizzes/search", cfg.QuizHandler.Search)
		api.GET("/quizzes/:id", cfg.QuizHandler.Get)
	}

	// Users
	if cfg.UserHandler != nil {
		api.POST("/users", cfg.UserHandler.Register)
		api.POST("/users/login", cfg.UserHandler.Login)
		api.POST("/users/logout", cfg.UserHandler.Logout)
		api.GET("/users/:id", cfg.UserHandler.Profile)
	}

	// Claimed user required
	if cfg.QuizHandler != nil && cfg.AuthMiddleware != nil {
		owned := api.Group("/")
		owned.Use(cfg.AuthMiddleware.RequireClaimedUser())
		owned.GET("/me/quizzes", cfg.QuizHandler.Mine)
		owned.POST("/quizzes", cfg.QuizHandler.Create)
		owned.DELETE("/quizzes/:id", cfg.QuizHandler.Delete)
	}

	return r
}
