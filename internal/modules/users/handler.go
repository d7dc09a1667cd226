package users

import (
	"errors"
	"net/http"

	"chirpy/internal/middleware"
	"chirpy/internal/pkg/apperr"
	"chirpy/internal/pkg/response"
	"chirpy/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	api.POST("/users", response.Handle(h.Create))
	api.PUT("/users", requireAuth, response.Handle(h.Update))
}

// Create registers a new user.
// @Summary	Register a user
// @Tags		Users
// @Param		request	body	CredentialsRequest	true	"email and password"
// @Success	201	{object}	domain.User
// @Failure	400	{object}	map[string]string
// @Failure	409	{object}	map[string]string
// @Router		/api/users [POST]
func (h *Handler) Create(c *gin.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		return mapError(err)
	}

	response.JSON(c, http.StatusCreated, user)
	return nil
}

// Update changes email and password of the authenticated user.
// @Summary	Update own credentials
// @Tags		Users
// @Security	BearerAuth
// @Param		request	body	CredentialsRequest	true	"new email and password"
// @Success	200	{object}	domain.User
// @Failure	401	{object}	map[string]string
// @Router		/api/users [PUT]
func (h *Handler) Update(c *gin.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized", nil)
	}

	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.service.UpdateCredentials(c.Request.Context(), userID, req)
	if err != nil {
		return mapError(err)
	}

	response.JSON(c, http.StatusOK, user)
	return nil
}

func bindCredentials(c *gin.Context) (CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, apperr.BadRequest("Invalid request body", err)
	}
	if errs := validator.Validate(req); errs != nil {
		return req, apperr.BadRequest(validator.Message(errs), nil)
	}
	return req, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		return apperr.Conflict("Email already registered", err)
	case errors.Is(err, ErrUserNotFound):
		return apperr.NotFound("User not found", err)
	}
	return err
}
