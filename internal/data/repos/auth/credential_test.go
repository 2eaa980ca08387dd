package auth

import (
	"context"
	"testing"

	"github.com/yungbote/quizhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/quizhub-backend/internal/domain"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
)

func TestCredentialRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "cred@example.com")
	repo := NewCredentialRepo(db, testutil.Logger(t))

	if _, err := repo.Create(dbc, []*types.Credential{{UserID: u.ID, PasswordHash: "abc"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByUserID(dbc, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got == nil || got.PasswordHash != "abc" {
		t.Fatalf("GetByUserID: unexpected %+v", got)
	}

	none, err := repo.GetByUserID(dbc, u.ID+1)
	if err != nil || none != nil {
		t.Fatalf("GetByUserID (missing): got %+v err=%v", none, err)
	}

	if _, err := repo.Create(dbc, []*types.Credential{{UserID: u.ID, PasswordHash: "second"}}); err == nil {
		t.Fatalf("expected one credential per user")
	}
}
