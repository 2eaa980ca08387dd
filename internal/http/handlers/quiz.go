package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/quizhub-backend/internal/domain"
	domainagg "github.com/yungbote/quizhub-backend/internal/domain/aggregates"
	"github.com/yungbote/quizhub-backend/internal/http/middleware"
	"github.com/yungbote/quizhub-backend/internal/http/response"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
	"github.com/yungbote/quizhub-backend/internal/services"
)

type QuizHandler struct {
	log     *logger.Logger
	quizzes services.QuizService
}

func NewQuizHandler(log *logger.Logger, quizzes services.QuizService) *QuizHandler {
	return &QuizHandler{log: log.With("handler", "QuizHandler"), quizzes: quizzes}
}

// GET /api/quizzes
func (h *QuizHandler) Landing(c *gin.Context) {
	out, err := h.quizzes.Landing(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/quizzes/browse
func (h *QuizHandler) Browse(c *gin.Context) {
	out, err := h.quizzes.Browse(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/quizzes/search?query=
func (h *QuizHandler) Search(c *gin.Context) {
	out, err := h.quizzes.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/quizzes/:id
func (h *QuizHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	full, err := h.quizzes.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondOK(c, full)
}

// GET /api/me/quizzes
func (h *QuizHandler) Mine(c *gin.Context) {
	uid, _ := middleware.ClaimedUserID(c)
	out, err := h.quizzes.ListOwned(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	uid, _ := middleware.ClaimedUserID(c)
	var in types.IncomingFullQuiz
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, domainagg.NewError(domainagg.CodeValidation, "QuizHandler.Create", "malformed quiz body", err))
		return
	}
	id, err := h.quizzes.Create(c.Request.Context(), uid, in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"id": id})
}

// DELETE /api/quizzes/:id
func (h *QuizHandler) Delete(c *gin.Context) {
	uid, _ := middleware.ClaimedUserID(c)
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.quizzes.Delete(c.Request.Context(), uid, id); err != nil {
		response.Fail(c, err)
		return
	}
	response.RespondOK(c, gin.H{"id": id})
}

func pathID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainagg.NewError(domainagg.CodeValidation, "handlers.pathID", fmt.Sprintf("invalid id %q", raw), nil)
	}
	return uint(id), nil
}
