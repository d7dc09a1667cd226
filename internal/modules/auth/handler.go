package auth

import (
	"errors"
	"net/http"

	"chirpy/internal/pkg/apperr"
	creds "chirpy/internal/pkg/auth"
	"chirpy/internal/pkg/response"
	"chirpy/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/login", response.Handle(h.Login))
	api.POST("/refresh", response.Handle(h.Refresh))
	api.POST("/revoke", response.Handle(h.Revoke))
}

// Login checks email and password and issues an access and a refresh token.
// @Summary	Log in
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"credentials"
// @Success	200	{object}	LoginResponse
// @Failure	401	{object}	map[string]string
// @Router		/api/login [POST]
func (h *Handler) Login(c *gin.Context) error {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apperr.BadRequest("Invalid request body", err)
	}
	if errs := validator.Validate(req); errs != nil {
		return apperr.BadRequest(validator.Message(errs), nil)
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return apperr.Unauthorized("Incorrect email or password", err)
		}
		return err
	}

	response.JSON(c, http.StatusOK, LoginResponse{
		User:         *result.User,
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
	return nil
}

// Refresh exchanges a bearer refresh token for a new access token.
// @Summary	Refresh access token
// @Tags		Auth
// @Security	BearerAuth
// @Success	200	{object}	RefreshResponse
// @Failure	401	{object}	map[string]string
// @Router		/api/refresh [POST]
func (h *Handler) Refresh(c *gin.Context) error {
	refreshRaw, err := creds.GetBearerToken(c.Request.Header)
	if err != nil {
		return apperr.Unauthorized(err.Error(), nil)
	}

	token, err := h.service.Refresh(c.Request.Context(), refreshRaw)
	if err != nil {
		if errors.Is(err, ErrInvalidRefreshToken) {
			return apperr.Unauthorized("Invalid or expired refresh token", err)
		}
		return err
	}

	response.JSON(c, http.StatusOK, RefreshResponse{Token: token})
	return nil
}

// Revoke invalidates a bearer refresh token.
// @Summary	Revoke refresh token
// @Tags		Auth
// @Security	BearerAuth
// @Success	204
// @Failure	401	{object}	map[string]string
// @Router		/api/revoke [POST]
func (h *Handler) Revoke(c *gin.Context) error {
	refreshRaw, err := creds.GetBearerToken(c.Request.Header)
	if err != nil {
		return apperr.Unauthorized(err.Error(), nil)
	}

	if err := h.service.Revoke(c.Request.Context(), refreshRaw); err != nil {
		if errors.Is(err, ErrInvalidRefreshToken) {
			return apperr.Unauthorized("Invalid or already revoked refresh token", err)
		}
		return err
	}

	response.NoContent(c)
	return nil
}
