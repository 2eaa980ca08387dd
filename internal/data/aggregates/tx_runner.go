package aggregates

import (
	"context"
	"database/sql"

	datadb "github.com/yungbote/quizhub-backend/internal/data/db"
	domainagg "github.com/yungbote/quizhub-backend/internal/domain/aggregates"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"gorm.io/gorm"
)

// TxRunner provides a shared transaction boundary primitive for aggregate writes and snapshot reads.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

// NewGormSnapshotTxRunner returns a runner whose transactions read one consistent snapshot.
func NewGormSnapshotTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db, opts: datadb.SnapshotTxOptions(db)}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return domainagg.NewError(domainagg.CodeInternal, "aggregate.tx", "transaction runner has nil db", nil)
	}
	body := func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	}
	if r.opts != nil {
		return r.db.WithContext(ctx).Transaction(body, r.opts)
	}
	return r.db.WithContext(ctx).Transaction(body)
}
