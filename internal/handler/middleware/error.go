package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"commission-tracker/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler answers requests whose handler recorded an error without
// writing a response. Public errors carry their rendered body; bare errors go
// through the taxonomy mapping in httperr.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if last := c.Errors.Last(); last != nil {
			httperr.Abort(c, last.Err, "Request failed")
			return
		}
		if c.Writer.Status() != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func lastPublicResponse(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery logs the panic with the request id and answers with the
// standard 500 envelope. gin's own writer output is discarded.
func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic",
			"error", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c))

		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.AbortWithStatusJSON(resp.Status, resp)
	})
}
