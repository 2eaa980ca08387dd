package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/quizhub-backend/internal/http/response"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
	"github.com/yungbote/quizhub-backend/internal/services"
)

const (
	// HeaderClaimedUser carries the user id the client claims to act as.
	HeaderClaimedUser = "X-Api-Key"

	claimedUserKey = "claimed_user_id"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
	cookieName  string
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		log:         log.With("middleware", "AuthMiddleware"),
		authService: authService,
		cookieName:  cookieName,
	}
}

// RestoreSession attaches the session carried by the cookie, if any. Requests
// without a valid cookie continue anonymously.
func (am *AuthMiddleware) RestoreSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(am.cookieName)
		if err == nil && token != "" {
			c.Request = c.Request.WithContext(am.authService.RestoreSession(c.Request.Context(), token))
		}
		c.Next()
	}
}

// RequireClaimedUser checks the claimed user header against the session: a
// missing header is 404, a mismatch 401.
func (am *AuthMiddleware) RequireClaimedUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		values, present := c.Request.Header[http.CanonicalHeaderKey(HeaderClaimedUser)]
		claimed := ""
		if len(values) > 0 {
			claimed = values[0]
		}
		uid, err := am.authService.Authorize(c.Request.Context(), claimed, present)
		if err != nil {
			am.log.Debug("claimed user rejected", "path", c.FullPath(), "error", err)
			response.Abort(c, err)
			return
		}
		c.Set(claimedUserKey, uid)
		c.Next()
	}
}

// ClaimedUserID returns the id accepted by RequireClaimedUser.
func ClaimedUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(claimedUserKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok && uid != 0
}
