package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/quizhub-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// Fail writes err using the status its error code maps to. Internal failures
// are reported without their cause.
func Fail(c *gin.Context, err error) {
	apiErr := apierr.FromError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		c.JSON(apiErr.Status, ErrorEnvelope{Error: APIError{Message: http.StatusText(apiErr.Status), Code: apiErr.Code}})
		return
	}
	RespondError(c, apiErr.Status, apiErr.Code, apiErr.Err)
}

// Abort is Fail for middleware: it stops the handler chain.
func Abort(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
