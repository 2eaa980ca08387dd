package auth

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/quizhub-backend/internal/domain"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type CredentialRepo interface {
	Create(dbc dbctx.Context, creds []*types.Credential) ([]*types.Credential, error)
	GetByUserID(dbc dbctx.Context, userID uint) (*types.Credential, error)
}

type credentialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCredentialRepo(db *gorm.DB, baseLog *logger.Logger) CredentialRepo {
	return &credentialRepo{db: db, log: baseLog.With("repo", "CredentialRepo")}
}

func (r *credentialRepo) Create(dbc dbctx.Context, creds []*types.Credential) ([]*types.Credential, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(creds) == 0 {
		return []*types.Credential{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&creds).Error; err != nil {
		return nil, err
	}
	return creds, nil
}

// GetByUserID returns nil, nil when the user has no credential row.
func (r *credentialRepo) GetByUserID(dbc dbctx.Context, userID uint) (*types.Credential, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.Credential
	err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
