package quiz

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/quizhub-backend/internal/data/db"
	types "github.com/yungbote/quizhub-backend/internal/domain"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type QuizRepo interface {
	Create(dbc dbctx.Context, quizzes []*types.Quiz) ([]*types.Quiz, error)
	GetByID(dbc dbctx.Context, id uint) (*types.Quiz, error)
	ListFirst(dbc dbctx.Context, limit int) ([]types.Quiz, error)
	ListByName(dbc dbctx.Context) ([]types.Quiz, error)
	ListByOwner(dbc dbctx.Context, ownerID uint) ([]types.Quiz, error)
	Search(dbc dbctx.Context, pattern string) ([]types.Quiz, error)
	DeleteOwned(dbc dbctx.Context, ownerID, id uint) (int64, error)
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return &quizRepo{db: db, log: baseLog.With("repo", "QuizRepo")}
}

func (r *quizRepo) Create(dbc dbctx.Context, quizzes []*types.Quiz) ([]*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(quizzes) == 0 {
		return []*types.Quiz{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetByID returns nil, nil when the quiz does not exist.
func (r *quizRepo) GetByID(dbc dbctx.Context, id uint) (*types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.Quiz
	err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *quizRepo) ListFirst(dbc dbctx.Context, limit int) ([]types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []types.Quiz{}
	q := transaction.WithContext(dbc.Ctx).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *quizRepo) ListByName(dbc dbctx.Context) ([]types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []types.Quiz{}
	if err := transaction.WithContext(dbc.Ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *quizRepo) ListByOwner(dbc dbctx.Context, ownerID uint) ([]types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []types.Quiz{}
	if err := transaction.WithContext(dbc.Ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Search matches pattern (see db.BooleanPattern) against name and description.
func (r *quizRepo) Search(dbc dbctx.Context, pattern string) ([]types.Quiz, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []types.Quiz{}
	if pattern == "" {
		return out, nil
	}
	where, args := db.TextMatch(db.DialectOf(transaction), pattern)
	if err := transaction.WithContext(dbc.Ctx).
		Where(where, args...).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *quizRepo) DeleteOwned(dbc dbctx.Context, ownerID, id uint) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(dbc.Ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&types.Quiz{})
	return res.RowsAffected, res.Error
}
