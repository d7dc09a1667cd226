package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"chirpy/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request, flags non-2xx responses and recovers
// from panics with a 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				requestFields(c, start).
					WithField("stack", string(debug.Stack())).
					WithError(err).
					Error("panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Something went wrong on our end",
				})
				return
			}

			entry := requestFields(c, start)
			for _, err := range c.Errors {
				entry = entry.WithError(err)
			}

			status := c.Writer.Status()
			switch {
			case status >= http.StatusInternalServerError:
				entry.Errorf("[NON-OK] %s %s - Status: %d", c.Request.Method, c.Request.URL.Path, status)
			case status >= http.StatusMultipleChoices:
				entry.Warnf("[NON-OK] %s %s - Status: %d", c.Request.Method, c.Request.URL.Path, status)
			default:
				entry.Info("request")
			}
		}()

		c.Next()
	}
}

func requestFields(c *gin.Context, start time.Time) *logrus.Entry {
	fields := logrus.Fields{
		"status":     c.Writer.Status(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"query":      c.Request.URL.RawQuery,
		"client_ip":  c.ClientIP(),
		"latency":    time.Since(start).String(),
		"request_id": requestID(c),
	}
	if id, ok := UserID(c); ok {
		fields["user_id"] = id.String()
	}
	return logger.Log.WithFields(fields)
}

func requestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	return requestID
}
