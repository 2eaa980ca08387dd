package quiz

import (
	"gorm.io/gorm"

	types "github.com/yungbote/quizhub-backend/internal/domain"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type ResultRepo interface {
	Create(dbc dbctx.Context, results []*types.QuizResult) ([]*types.QuizResult, error)
	ListByQuizID(dbc dbctx.Context, quizID uint) ([]types.QuizResult, error)
	DeleteByQuizID(dbc dbctx.Context, quizID uint) error
}

type resultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResultRepo(db *gorm.DB, baseLog *logger.Logger) ResultRepo {
	return &resultRepo{db: db, log: baseLog.With("repo", "ResultRepo")}
}

func (r *resultRepo) Create(dbc dbctx.Context, results []*types.QuizResult) ([]*types.QuizResult, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(results) == 0 {
		return []*types.QuizResult{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByQuizID returns result bands ordered by num.
func (r *resultRepo) ListByQuizID(dbc dbctx.Context, quizID uint) ([]types.QuizResult, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []types.QuizResult{}
	if err := transaction.WithContext(dbc.Ctx).
		Where("quiz_id = ?", quizID).
		Order("num ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resultRepo) DeleteByQuizID(dbc dbctx.Context, quizID uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("quiz_id = ?", quizID).
		Delete(&types.QuizResult{}).Error
}
