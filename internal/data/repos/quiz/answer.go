package quiz

import (
	"gorm.io/gorm"

	types "github.com/yungbote/quizhub-backend/internal/domain"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type AnswerRepo interface {
	Create(dbc dbctx.Context, answers []*types.Answer) ([]*types.Answer, error)
	ListByQuestionID(dbc dbctx.Context, questionID uint) ([]types.Answer, error)
	DeleteByQuizID(dbc dbctx.Context, quizID uint) error
}

type answerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return &answerRepo{db: db, log: baseLog.With("repo", "AnswerRepo")}
}

func (r *answerRepo) Create(dbc dbctx.Context, answers []*types.Answer) ([]*types.Answer, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(answers) == 0 {
		return []*types.Answer{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) ListByQuestionID(dbc dbctx.Context, questionID uint) ([]types.Answer, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []types.Answer{}
	if err := transaction.WithContext(dbc.Ctx).
		Where("question_id = ?", questionID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByQuizID removes the answers of every question under quizID.
func (r *answerRepo) DeleteByQuizID(dbc dbctx.Context, quizID uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	questionIDs := transaction.WithContext(dbc.Ctx).
		Model(&types.Question{}).
		Select("id").
		Where("quiz_id = ?", quizID)
	return transaction.WithContext(dbc.Ctx).
		Where("question_id IN (?)", questionIDs).
		Delete(&types.Answer{}).Error
}
