package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/middleware"
	"filmforge-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(c.Log),
		middleware.RequestID(),
		middleware.Logger(c.Log),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)

		protected := v1.Group("")
		protected.Use(middleware.Auth(c.JWTManager))

		setupUserRoutes(protected, c)
		setupGenreRoutes(protected, c)
		setupDirectorRoutes(protected, c)
		setupActorRoutes(protected, c)
		setupMovieRoutes(protected, c)
		setupRatingRoutes(protected, c)
		setupReviewRoutes(protected, c)
		setupInvitationRoutes(protected, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
		auth.GET("/me", middleware.Auth(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(rg *gin.RouterGroup, c *container.Container) {
	users := rg.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.Get)

		admin := users.Group("", middleware.SuperAdministrator())
		admin.POST("", c.UserHandler.Create)
		admin.PUT("/:id", c.UserHandler.Update)
		admin.DELETE("/:id", c.UserHandler.Delete)
	}
}

// ========================================
// GENRE ROUTES
// ========================================
func setupGenreRoutes(rg *gin.RouterGroup, c *container.Container) {
	genres := rg.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.GET("/:id", c.GenreHandler.Get)

		admin := genres.Group("", middleware.SuperAdministrator())
		admin.POST("", c.GenreHandler.Create)
		admin.PUT("/:id", c.GenreHandler.Update)
		admin.DELETE("/:id", c.GenreHandler.Delete)
	}
}

// ========================================
// DIRECTOR ROUTES
// ========================================
func setupDirectorRoutes(rg *gin.RouterGroup, c *container.Container) {
	directors := rg.Group("/directors")
	{
		directors.GET("", c.DirectorHandler.List)
		directors.GET("/:id", c.DirectorHandler.Get)

		admin := directors.Group("", middleware.SuperAdministrator())
		admin.POST("", c.DirectorHandler.Create)
		admin.PUT("/:id", c.DirectorHandler.Update)
		admin.DELETE("/:id", c.DirectorHandler.Delete)
	}
}

// ========================================
// ACTOR ROUTES
// ========================================
func setupActorRoutes(rg *gin.RouterGroup, c *container.Container) {
	actors := rg.Group("/actors")
	{
		actors.GET("", c.ActorHandler.List)
		actors.GET("/:id", c.ActorHandler.Get)
		actors.GET("/:id/movie", c.MovieHandler.GetByActor)

		// Actors may edit their own record; the service checks ownership.
		actors.PUT("/:id",
			middleware.RequireRoles(shared.RoleSuperAdministrator, shared.RoleActor),
			c.ActorHandler.Update,
		)

		admin := actors.Group("", middleware.SuperAdministrator())
		admin.POST("", c.ActorHandler.Create)
		admin.DELETE("/:id", c.ActorHandler.Delete)
	}
}

// ========================================
// MOVIE ROUTES
// ========================================
func setupMovieRoutes(rg *gin.RouterGroup, c *container.Container) {
	movies := rg.Group("/movies")
	{
		movies.GET("", c.MovieHandler.List)
		movies.GET("/:id", c.MovieHandler.Get)
		movies.GET("/:id/budget", c.MovieHandler.Budget)

		admin := movies.Group("", middleware.SuperAdministrator())
		admin.POST("", c.MovieHandler.Create)
		admin.PUT("/:id", c.MovieHandler.Update)
		admin.DELETE("/:id", c.MovieHandler.Delete)
	}
}

// ========================================
// RATING + REVIEW ROUTES
// ========================================
func setupRatingRoutes(rg *gin.RouterGroup, c *container.Container) {
	ratings := rg.Group("/ratings")
	{
		ratings.GET("", c.RatingHandler.List)
		ratings.GET("/:id", c.RatingHandler.Get)
		ratings.POST("", c.RatingHandler.Create)

		admin := ratings.Group("", middleware.SuperAdministrator())
		admin.PUT("/:id", c.RatingHandler.Update)
		admin.DELETE("/:id", c.RatingHandler.Delete)
	}
}

func setupReviewRoutes(rg *gin.RouterGroup, c *container.Container) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", c.ReviewHandler.List)
		reviews.GET("/:id", c.ReviewHandler.Get)
		reviews.POST("", c.ReviewHandler.Create)

		admin := reviews.Group("", middleware.SuperAdministrator())
		admin.PUT("/:id", c.ReviewHandler.Update)
		admin.DELETE("/:id", c.ReviewHandler.Delete)
	}
}

// ========================================
// INVITATION ROUTES
// ========================================
func setupInvitationRoutes(rg *gin.RouterGroup, c *container.Container) {
	invitations := rg.Group("/invitations")
	{
		invitations.GET("", c.InvitationHandler.List)
		invitations.GET("/:id", c.InvitationHandler.Get)
		invitations.GET("/actor/:actorId", c.InvitationHandler.ListByActor)
		invitations.GET("/movie/:movieId", c.InvitationHandler.ListByMovie)
		invitations.GET("/actor/:actorId/movie/:movieId", c.InvitationHandler.GetByActorAndMovie)

		invitations.POST("",
			middleware.RequireRoles(shared.RoleSuperAdministrator, shared.RoleDirector),
			c.InvitationHandler.Create,
		)
		invitations.PUT("/:id", c.InvitationHandler.Update)
		invitations.DELETE("/:id", c.InvitationHandler.Delete)
	}
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := appCtx.HealthCheck(ctx)

		status, code := "ok", http.StatusOK
		if services["database"] != "ok" {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
