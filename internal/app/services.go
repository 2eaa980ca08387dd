package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/quizhub-backend/internal/data/aggregates"
	"github.com/yungbote/quizhub-backend/internal/observability"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
	"github.com/yungbote/quizhub-backend/internal/services"
)

type Services struct {
	Auth services.AuthService
	Quiz services.QuizService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	hasher, err := services.NewPasswordHasher(cfg.PasswordHasher)
	if err != nil {
		return Services{}, fmt.Errorf("password hasher: %w", err)
	}
	codec, err := services.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return Services{}, fmt.Errorf("session codec: %w", err)
	}

	writer := aggregates.NewQuizAggregate(aggregates.QuizAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewMetricsHooks(metrics, log),
		},
		Quizzes:   reposet.Quiz,
		Questions: reposet.Question,
		Answers:   reposet.Answer,
		Results:   reposet.Result,
	})
	reader := aggregates.NewQuizReader(aggregates.QuizReaderDeps{
		DB:           db,
		Log:          log,
		LandingLimit: cfg.LandingLimit,
		Quizzes:      reposet.Quiz,
		Questions:    reposet.Question,
		Answers:      reposet.Answer,
		Results:      reposet.Result,
	})

	return Services{
		Auth: services.NewAuthService(db, log, reposet.User, reposet.Credential, hasher, codec, clients.Revoker, metrics),
		Quiz: services.NewQuizService(log, writer, reader, metrics),
	}, nil
}
