package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/quizhub-backend/internal/domain/aggregates"
	"github.com/yungbote/quizhub-backend/internal/http/response"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
	"github.com/yungbote/quizhub-backend/internal/services"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type UserHandler struct {
	log    *logger.Logger
	auth   services.AuthService
	cookie CookieConfig
}

func NewUserHandler(log *logger.Logger, auth services.AuthService, cookie CookieConfig) *UserHandler {
	return &UserHandler{log: log.With("handler", "UserHandler"), auth: auth, cookie: cookie}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, domainagg.NewError(domainagg.CodeValidation, "UserHandler.Register", "malformed registration body", err))
		return
	}
	id, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondCreated(c, id)
}

// POST /api/users/login responds with the user, or null for bad credentials.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, domainagg.NewError(domainagg.CodeValidation, "UserHandler.Login", "malformed login body", err))
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.log.Error("login failed", "error", err)
		response.Fail(c, err)
		return
	}
	if user == nil {
		response.RespondOK(c, nil)
		return
	}
	h.setCookie(c, token, h.auth.SessionTTL())
	response.RespondOK(c, user)
}

// POST /api/users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.log.Warn("logout failed", "error", err)
	}
	h.setCookie(c, "", -time.Second)
	c.Status(http.StatusNoContent)
}

// GET /api/users/:id responds with the user only to that user's own session.
func (h *UserHandler) Profile(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	user, err := h.auth.FetchProfile(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondOK(c, user)
}

// setCookie writes the session cookie. A zero ttl makes a browser-session
// cookie and a negative one deletes it.
func (h *UserHandler) setCookie(c *gin.Context, value string, ttl time.Duration) {
	maxAge := 0
	switch {
	case ttl < 0:
		maxAge = -1
	case ttl > 0:
		maxAge = int(ttl.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
