package admin

import (
	"errors"
	"net/http"

	"chirpy/internal/pkg/apperr"
	"chirpy/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const metricsPage = `<html>
  <body>
    <h1>Welcome, Chirpy Admin</h1>
    <p>Chirpy has been visited %d times!</p>
  </body>
</html>`

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/metrics", h.Metrics)
	admin.POST("/reset", response.Handle(h.Reset))
}

// Metrics renders the fileserver hit count.
// @Summary	Fileserver hits
// @Tags		Admin
// @Produce	html
// @Success	200	{string}	string
// @Router		/admin/metrics [GET]
func (h *Handler) Metrics(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, metricsPage, h.service.Hits())
}

// Reset wipes users and the hit counter. Dev platform only.
// @Summary	Reset state
// @Tags		Admin
// @Produce	plain
// @Success	200	{string}	string	"Hits reset to 0"
// @Failure	403	{object}	map[string]string
// @Router		/admin/reset [POST]
func (h *Handler) Reset(c *gin.Context) error {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		if errors.Is(err, ErrResetForbidden) {
			return apperr.Forbidden("Reset is only allowed in dev environment.", err)
		}
		return err
	}

	c.String(http.StatusOK, "Hits reset to %d", h.service.Hits())
	return nil
}
