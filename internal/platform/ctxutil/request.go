package ctxutil

import (
	"context"
	"time"
)

type requestDataKey struct{}

// RequestData carries the session restored for the current request.
// A nil value or zero UserID means the request is anonymous.
type RequestData struct {
	UserID    uint
	SessionID string
	Token     string
	// ExpiresAt is zero for sessions issued without an expiry.
	ExpiresAt time.Time
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if ctx == nil {
		return nil
	}
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// SessionUserID returns the authenticated user id, if any.
func SessionUserID(ctx context.Context) (uint, bool) {
	rd := GetRequestData(ctx)
	if rd == nil || rd.UserID == 0 {
		return 0, false
	}
	return rd.UserID, true
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
