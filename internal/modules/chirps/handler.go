package chirps

import (
	"errors"
	"net/http"

	"chirpy/internal/middleware"
	"chirpy/internal/pkg/apperr"
	"chirpy/internal/pkg/response"
	"chirpy/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	chirpGroup := api.Group("/chirps")
	{
		chirpGroup.GET("", response.Handle(h.List))
		chirpGroup.GET("/:chirpID", response.Handle(h.Get))
		chirpGroup.POST("", requireAuth, response.Handle(h.Create))
		chirpGroup.DELETE("/:chirpID", requireAuth, response.Handle(h.Delete))
	}
}

// Create posts a chirp.
// @Summary	Create chirp
// @Tags		Chirps
// @Security	BearerAuth
// @Param		request	body	CreateChirpRequest	true	"body and author id"
// @Success	201	{object}	domain.Chirp
// @Failure	400	{object}	map[string]string
// @Failure	401	{object}	map[string]string
// @Failure	404	{object}	map[string]string
// @Router		/api/chirps [POST]
func (h *Handler) Create(c *gin.Context) error {
	if _, ok := middleware.UserID(c); !ok {
		return apperr.Unauthorized("Unauthorized", nil)
	}

	var req CreateChirpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apperr.BadRequest("Invalid request body", err)
	}
	if errs := validator.Validate(req); errs != nil {
		return apperr.BadRequest(validator.Message(errs), nil)
	}

	authorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return apperr.BadRequest("userId must be a valid UUID", err)
	}

	chirp, err := h.service.Create(c.Request.Context(), authorID, req.Body)
	if err != nil {
		return mapError(err)
	}

	response.JSON(c, http.StatusCreated, chirp)
	return nil
}

// List returns the chirp feed in creation order.
// @Summary	List chirps
// @Tags		Chirps
// @Param		sort	query	string	false	"asc (default) or desc"
// @Success	200	{object}	ListChirpsResponse
// @Router		/api/chirps [GET]
func (h *Handler) List(c *gin.Context) error {
	desc := false
	switch c.DefaultQuery("sort", "asc") {
	case "asc":
	case "desc":
		desc = true
	default:
		return apperr.BadRequest("sort must be asc or desc", nil)
	}

	chirps, err := h.service.List(c.Request.Context(), desc)
	if err != nil {
		return err
	}

	response.JSON(c, http.StatusOK, ListChirpsResponse{UserChirps: chirps})
	return nil
}

// Get returns one chirp.
// @Summary	Get chirp
// @Tags		Chirps
// @Param		chirpID	path	string	true	"chirp id"
// @Success	200	{object}	domain.Chirp
// @Failure	400	{object}	map[string]string
// @Failure	404	{object}	map[string]string
// @Router		/api/chirps/{chirpID} [GET]
func (h *Handler) Get(c *gin.Context) error {
	id, err := chirpID(c)
	if err != nil {
		return err
	}

	chirp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		return mapError(err)
	}

	response.JSON(c, http.StatusOK, chirp)
	return nil
}

// Delete removes one of the caller's chirps.
// @Summary	Delete chirp
// @Tags		Chirps
// @Security	BearerAuth
// @Param		chirpID	path	string	true	"chirp id"
// @Success	204
// @Failure	403	{object}	map[string]string
// @Failure	404	{object}	map[string]string
// @Router		/api/chirps/{chirpID} [DELETE]
func (h *Handler) Delete(c *gin.Context) error {
	callerID, ok := middleware.UserID(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized", nil)
	}

	id, err := chirpID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request.Context(), callerID, id); err != nil {
		return mapError(err)
	}

	response.NoContent(c)
	return nil
}

func chirpID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("chirpID"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid chirp ID", err)
	}
	return id, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrEmptyBody):
		return apperr.BadRequest("Chirp body is required", err)
	case errors.Is(err, ErrBodyTooLong):
		return apperr.BadRequest("Chirp is too long", err)
	case errors.Is(err, ErrChirpNotFound):
		return apperr.NotFound("Chirp not found", err)
	case errors.Is(err, ErrUserNotFound):
		return apperr.NotFound("User not found", err)
	case errors.Is(err, ErrNotOwner):
		return apperr.Forbidden("You can only delete your own chirps", err)
	}
	return err
}
