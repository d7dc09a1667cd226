package middleware

import (
	"net/http"

	"chirpy/internal/pkg/auth"
	"chirpy/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// RequireAccessToken rejects requests without a valid bearer JWT and stores
// the token subject in the context.
func RequireAccessToken(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.GetBearerToken(c.Request.Header)
		if err != nil {
			response.ErrorStatus(c, http.StatusUnauthorized, err.Error())
			return
		}

		userID, err := v.ValidateToken(token)
		if err != nil {
			response.ErrorStatus(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user set by RequireAccessToken.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
