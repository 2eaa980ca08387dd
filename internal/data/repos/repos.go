package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/quizhub-backend/internal/data/repos/auth"
	"github.com/yungbote/quizhub-backend/internal/data/repos/quiz"
	"github.com/yungbote/quizhub-backend/internal/data/repos/user"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type CredentialRepo = auth.CredentialRepo

type QuizRepo = quiz.QuizRepo
type QuestionRepo = quiz.QuestionRepo
type AnswerRepo = quiz.AnswerRepo
type ResultRepo = quiz.ResultRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewCredentialRepo(db *gorm.DB, baseLog *logger.Logger) CredentialRepo {
	return auth.NewCredentialRepo(db, baseLog)
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo { return quiz.NewQuizRepo(db, baseLog) }
func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return quiz.NewQuestionRepo(db, baseLog)
}
func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return quiz.NewAnswerRepo(db, baseLog)
}
func NewResultRepo(db *gorm.DB, baseLog *logger.Logger) ResultRepo {
	return quiz.NewResultRepo(db, baseLog)
}
