package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/quizhub-backend/internal/data/repos"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type Repos struct {
	User       repos.UserRepo
	Credential repos.CredentialRepo

	Quiz     repos.QuizRepo
	Question repos.QuestionRepo
	Answer   repos.AnswerRepo
	Result   repos.ResultRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		Credential: repos.NewCredentialRepo(db, log),

		Quiz:     repos.NewQuizRepo(db, log),
		Question: repos.NewQuestionRepo(db, log),
		Answer:   repos.NewAnswerRepo(db, log),
		Result:   repos.NewResultRepo(db, log),
	}
}
