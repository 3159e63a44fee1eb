package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware
// and writes msg to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, "", msg, detail)
}

func AbortWithCode(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps the shared error taxonomy onto HTTP statuses.
// notFoundMsg names the missing resource.
func AbortWithDomainError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errs.Is(err, errs.ErrInvalidArgument):
		AbortWithCode(c, http.StatusBadRequest, err, "VALIDATION_FAILED", rootMessage(err), nil)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithCode(c, http.StatusNotFound, err, "NOT_FOUND", notFoundMsg, nil)
	case errs.Is(err, errs.ErrInsufficientStock):
		AbortWithCode(c, http.StatusConflict, err, "OUT_OF_STOCK", "Out of stock", nil)
	case errs.Is(err, errs.ErrDependencyUnavailable), errors.Is(err, context.DeadlineExceeded):
		AbortWithCode(c, http.StatusServiceUnavailable, err, "SERVICE_UNAVAILABLE", "Service unavailable", nil)
	case errs.Is(err, errs.ErrStorageFailure):
		AbortWithCode(c, http.StatusInternalServerError, err, "STORAGE_FAILURE", "Internal server error", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
