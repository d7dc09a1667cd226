package webhooks

import (
	"crypto/subtle"
	"errors"

	"chirpy/internal/pkg/apperr"
	"chirpy/internal/pkg/auth"
	"chirpy/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service  *Service
	polkaKey string
}

func NewHandler(service *Service, polkaKey string) *Handler {
	return &Handler{service: service, polkaKey: polkaKey}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/polka/webhooks", response.Handle(h.Polka))
}

// Polka receives payment platform events.
// @Summary	Polka webhook
// @Tags		Webhooks
// @Param		Authorization	header	string		true	"ApiKey <key>"
// @Param		request			body	PolkaEvent	true	"event"
// @Success	204
// @Failure	401	{object}	map[string]string
// @Failure	404	{object}	map[string]string
// @Router		/api/polka/webhooks [POST]
func (h *Handler) Polka(c *gin.Context) error {
	key, err := auth.GetAPIKey(c.Request.Header)
	if err != nil {
		return apperr.Unauthorized(err.Error(), err)
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.polkaKey)) != 1 {
		return apperr.Unauthorized("Invalid API key", nil)
	}

	var req PolkaEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		return apperr.BadRequest("Invalid request body", err)
	}

	var userID uuid.UUID
	if req.Event == EventUserUpgraded {
		userID, err = uuid.Parse(req.Data.UserID)
		if err != nil {
			return apperr.BadRequest("userId must be a valid UUID", err)
		}
	}

	if err := h.service.HandleEvent(c.Request.Context(), req.Event, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return apperr.NotFound("User not found", err)
		}
		return err
	}

	response.NoContent(c)
	return nil
}
