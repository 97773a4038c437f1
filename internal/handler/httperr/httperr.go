package httperr

import (
	"errors"
	"net/http"

	"commission-tracker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindError answers 400 and lists the failing fields when the
// binding error came from the validator.
func AbortWithBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, len(ve))
		for i, fe := range ve {
			fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
		}
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

// Abort maps the error taxonomy to a status. Client errors carry the error
// text as detail; server errors do not.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusFor(err)
	var detail any
	switch {
	case status < http.StatusInternalServerError:
		detail = err.Error()
	case status == http.StatusServiceUnavailable:
		msg = "Storage temporarily unavailable, safe to retry"
	default:
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, detail)
}

func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
