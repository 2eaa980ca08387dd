package quiz

import (
	"gorm.io/gorm"

	types "github.com/yungbote/quizhub-backend/internal/domain"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type QuestionRepo interface {
	Create(dbc dbctx.Context, questions []*types.Question) ([]*types.Question, error)
	ListByQuizID(dbc dbctx.Context, quizID uint) ([]types.Question, error)
	DeleteByQuizID(dbc dbctx.Context, quizID uint) error
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return &questionRepo{db: db, log: baseLog.With("repo", "QuestionRepo")}
}

func (r *questionRepo) Create(dbc dbctx.Context, questions []*types.Question) ([]*types.Question, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(questions) == 0 {
		return []*types.Question{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByQuizID returns questions in insertion order.
func (r *questionRepo) ListByQuizID(dbc dbctx.Context, quizID uint) ([]types.Question, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []types.Question{}
	if err := transaction.WithContext(dbc.Ctx).
		Where("quiz_id = ?", quizID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionRepo) DeleteByQuizID(dbc dbctx.Context, quizID uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("quiz_id = ?", quizID).
		Delete(&types.Question{}).Error
}
