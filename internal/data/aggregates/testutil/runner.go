// Package testutil holds fakes for driving quiz aggregates into failure paths.
package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/quizhub-backend/internal/data/aggregates"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
)

// FaultyRunner wraps a real runner and injects faults around it. BeginErr
// fails before the body runs. CommitErr is returned from inside the inner
// transaction after a successful body, so the inner runner rolls the writes
// back. With a nil Inner the body runs without a transaction.
type FaultyRunner struct {
	Inner     aggregates.TxRunner
	BeginErr  error
	CommitErr error

	mu        sync.Mutex
	begins    int
	commits   int
	rollbacks int
}

var _ aggregates.TxRunner = (*FaultyRunner)(nil)

func (r *FaultyRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.begins++
	beginErr, commitErr := r.BeginErr, r.CommitErr
	r.mu.Unlock()
	if beginErr != nil {
		return beginErr
	}

	body := func(dbc dbctx.Context) error {
		if err := fn(dbc); err != nil {
			return err
		}
		return commitErr
	}
	var err error
	if r.Inner != nil {
		err = r.Inner.InTx(ctx, body)
	} else {
		err = body(dbctx.Context{Ctx: ctx})
	}

	r.mu.Lock()
	if err != nil {
		r.rollbacks++
	} else {
		r.commits++
	}
	r.mu.Unlock()
	return err
}

// Counts returns how many transactions were started, committed and rolled back.
func (r *FaultyRunner) Counts() (begins, commits, rollbacks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.begins, r.commits, r.rollbacks
}
