package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	dataagg "github.com/yungbote/quizhub-backend/internal/data/aggregates"
	"github.com/yungbote/quizhub-backend/internal/data/repos"
	types "github.com/yungbote/quizhub-backend/internal/domain"
	domainagg "github.com/yungbote/quizhub-backend/internal/domain/aggregates"
	"github.com/yungbote/quizhub-backend/internal/observability"
	"github.com/yungbote/quizhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/quizhub-backend/internal/platform/dbctx"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (uint, error)
	// Login returns a nil user and empty token, with no error, for any bad credentials.
	Login(ctx context.Context, username, password string) (*types.User, string, error)
	Logout(ctx context.Context) error
	IsLoggedInAs(ctx context.Context, candidateID uint) bool
	Authorize(ctx context.Context, claimedID string, present bool) (uint, error)
	FetchProfile(ctx context.Context, userID uint) (*types.User, error)
	RestoreSession(ctx context.Context, token string) context.Context
	SessionTTL() time.Duration
}

type authService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	credRepo repos.CredentialRepo
	hasher   PasswordHasher
	codec    *SessionCodec
	revoker  SessionRevoker
	metrics  *observability.Metrics
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	credRepo repos.CredentialRepo,
	hasher PasswordHasher,
	codec *SessionCodec,
	revoker SessionRevoker,
	metrics *observability.Metrics,
) AuthService {
	if hasher == nil {
		hasher = SHA3Hasher{}
	}
	if revoker == nil {
		revoker = noopRevoker{}
	}
	return &authService{
		db:       db,
		log:      log.With("service", "AuthService"),
		userRepo: userRepo,
		credRepo: credRepo,
		hasher:   hasher,
		codec:    codec,
		revoker:  revoker,
		metrics:  metrics,
	}
}

func (as *authService) SessionTTL() time.Duration { return as.codec.TTL() }

func (as *authService) Register(ctx context.Context, req RegisterRequest) (uint, error) {
	const op = "Auth.Register"
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		as.metrics.IncAuthEvent("register", "invalid")
		return 0, domainagg.Invalid(op, "name, email and password are required")
	}
	hash, err := as.hasher.Hash(req.Password)
	if err != nil {
		return 0, domainagg.NewError(domainagg.CodeInternal, op, "hash password", err)
	}

	var userID uint
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		taken, err := as.userRepo.EmailExists(dbc, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return domainagg.NewError(domainagg.CodeConflict, op, "email is already registered", nil)
		}
		created, err := as.userRepo.Create(dbc, []*types.User{{Name: name, Email: email}})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		userID = created[0].ID
		if _, err := as.credRepo.Create(dbc, []*types.Credential{{UserID: userID, PasswordHash: hash}}); err != nil {
			return fmt.Errorf("create credential: %w", err)
		}
		return nil
	})
	if err != nil {
		if domainagg.CodeOf(err) == "" {
			err = dataagg.MapError(op, err)
		}
		as.log.Warn("registration failed", "error", err)
		as.metrics.IncAuthEvent("register", string(domainagg.CodeOf(err)))
		return 0, err
	}
	as.metrics.IncAuthEvent("register", "success")
	return userID, nil
}

func (as *authService) Login(ctx context.Context, username, password string) (*types.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		as.metrics.IncAuthEvent("login", "failure")
		return nil, "", nil
	}
	dbc := dbctx.Context{Ctx: ctx}
	user, err := as.userRepo.GetByEmail(dbc, username)
	if err != nil {
		return nil, "", fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		as.metrics.IncAuthEvent("login", "failure")
		return nil, "", nil
	}
	cred, err := as.credRepo.GetByUserID(dbc, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("load credential: %w", err)
	}
	if cred == nil {
		as.metrics.IncAuthEvent("login", "failure")
		return nil, "", nil
	}
	ok, err := as.hasher.Verify(cred.PasswordHash, password)
	if err != nil {
		as.log.Warn("stored password hash unreadable", "user_id", user.ID, "error", err)
	}
	if !ok {
		as.metrics.IncAuthEvent("login", "failure")
		return nil, "", nil
	}

	token, _, err := as.codec.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	as.metrics.IncAuthEvent("login", "success")
	return user, token, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.SessionID == "" {
		return nil
	}
	as.metrics.IncAuthEvent("logout", "success")
	// Zero ttl revokes for good; an already expired token needs no entry.
	var ttl time.Duration
	if !rd.ExpiresAt.IsZero() {
		ttl = time.Until(rd.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
	}
	if err := as.revoker.Revoke(ctx, rd.SessionID, ttl); err != nil {
		as.log.Warn("session revocation failed", "user_id", rd.UserID, "error", err)
	}
	return nil
}

func (as *authService) IsLoggedInAs(ctx context.Context, candidateID uint) bool {
	uid, ok := ctxutil.SessionUserID(ctx)
	return ok && uid == candidateID
}

func (as *authService) Authorize(ctx context.Context, claimedID string, present bool) (uint, error) {
	const op = "Auth.Authorize"
	if !present {
		as.metrics.IncAuthEvent("authorize", "missing")
		return 0, domainagg.NewError(domainagg.CodeNotFound, op, "claimed user id missing", nil)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(claimedID), 10, 64)
	if err != nil || id == 0 || !as.IsLoggedInAs(ctx, uint(id)) {
		as.metrics.IncAuthEvent("authorize", "denied")
		return 0, domainagg.NewError(domainagg.CodeUnauthorized, op, "session does not match claimed user", nil)
	}
	as.metrics.IncAuthEvent("authorize", "success")
	return uint(id), nil
}

func (as *authService) FetchProfile(ctx context.Context, userID uint) (*types.User, error) {
	if !as.IsLoggedInAs(ctx, userID) {
		return nil, nil
	}
	user, err := as.userRepo.GetByID(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return user, nil
}

func (as *authService) RestoreSession(ctx context.Context, token string) context.Context {
	if strings.TrimSpace(token) == "" {
		return ctx
	}
	claims, err := as.codec.Parse(token)
	if err != nil {
		as.log.Debug("ignoring invalid session cookie", "error", err)
		return ctx
	}
	uid, err := claims.UserID()
	if err != nil {
		as.log.Debug("ignoring session with bad subject", "error", err)
		return ctx
	}
	revoked, err := as.revoker.IsRevoked(ctx, claims.ID)
	if err != nil || revoked {
		return ctx
	}
	rd := &ctxutil.RequestData{
		UserID:    uid,
		SessionID: claims.ID,
		Token:     token,
	}
	if claims.ExpiresAt != nil {
		rd.ExpiresAt = claims.ExpiresAt.Time
	}
	return ctxutil.WithRequestData(ctx, rd)
}
