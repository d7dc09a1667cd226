package response

import (
	"net/http"

	"chirpy/internal/pkg/apperr"
	"chirpy/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandlerFunc is a gin handler that reports failures by returning them.
type HandlerFunc func(c *gin.Context) error

// Handle adapts h so that any returned error goes through Error.
func Handle(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			Error(c, err)
		}
	}
}

func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes {"error": msg}. Errors that are not *apperr.Error become a 500
// with a generic message.
func Error(c *gin.Context, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal(err)
	}

	status := appErr.Status()
	fields := logrus.Fields{
		"status": status,
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}
	if appErr.Err != nil {
		fields["internal_error"] = appErr.Err.Error()
	}
	entry := logger.Log.WithFields(fields)
	if status >= http.StatusInternalServerError {
		entry.Error(appErr.Message)
	} else if appErr.Err != nil {
		entry.Debug(appErr.Message)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": appErr.Message})
}

// ErrorStatus writes an error envelope without going through apperr.
func ErrorStatus(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
