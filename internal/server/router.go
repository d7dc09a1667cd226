package server

import (
	"net/http"

	"chirpy/internal/config"
	"chirpy/internal/middleware"
	"chirpy/internal/modules/admin"
	authmodule "chirpy/internal/modules/auth"
	"chirpy/internal/modules/chirps"
	"chirpy/internal/modules/users"
	"chirpy/internal/modules/webhooks"
	"chirpy/internal/pkg/auth"
	"chirpy/internal/pkg/response"
	"chirpy/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
// hits is shared with the admin metrics page.
func NewRouter(cfg *config.Config, db *gorm.DB, hits *middleware.Hits) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// repositories
	userRepo := repository.NewUserRepository(db)
	chirpRepo := repository.NewChirpRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)

	jwtService := auth.NewService(cfg.JWTSecret)
	requireAuth := middleware.RequireAccessToken(jwtService)

	usersHandler := users.NewHandler(users.NewService(userRepo))
	authHandler := authmodule.NewHandler(authmodule.NewService(userRepo, tokenRepo, jwtService, cfg.AccessTTL, cfg.RefreshTTL))
	chirpsHandler := chirps.NewHandler(chirps.NewService(chirpRepo, cfg.FeedUserID))
	webhooksHandler := webhooks.NewHandler(webhooks.NewService(userRepo), cfg.PolkaKey)
	adminHandler := admin.NewHandler(admin.NewService(userRepo, hits, cfg.IsDev()))

	app := r.Group("/app", middleware.CountHits(hits))
	app.Static("/", cfg.FileserverRoot)

	api := r.Group("/api")
	{
		api.GET("/healthz", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		usersHandler.RegisterRoutes(api, requireAuth)
		authHandler.RegisterRoutes(api)
		chirpsHandler.RegisterRoutes(api, requireAuth)
		webhooksHandler.RegisterRoutes(api)
	}

	adminHandler.RegisterRoutes(r.Group("/admin"))

	r.NoRoute(func(c *gin.Context) {
		response.ErrorStatus(c, http.StatusNotFound, "Not found")
	})

	return r
}
