// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chapel/internal/delivery/http/middleware"
	"chapel/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	WorshipHandler *handler.WorshipHandler
	SermonHandler  *handler.SermonHandler
	NewsHandler    *handler.NewsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	authHandler    *handler.AuthHandler
	worshipHandler *handler.WorshipHandler
	sermonHandler  *handler.SermonHandler
	newsHandler    *handler.NewsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		authHandler:    params.AuthHandler,
		worshipHandler: params.WorshipHandler,
		sermonHandler:  params.SermonHandler,
		newsHandler:    params.NewsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Service metadata and health check
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.HealthCheck)

	admin := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Worship schedule. Reads are public, writes require an admin token.
	worshipGroup := e.Group("/worships")
	{
		worshipGroup.GET("", r.worshipHandler.List)
		worshipGroup.GET("/active", r.worshipHandler.ListActive)
		worshipGroup.GET("/type/:type", r.worshipHandler.ListByType)
		worshipGroup.GET("/:id", r.worshipHandler.Get)
		worshipGroup.POST("", r.worshipHandler.Create, admin...)
		worshipGroup.PUT("/:id", r.worshipHandler.Update, admin...)
		worshipGroup.DELETE("/:id", r.worshipHandler.Delete, admin...)
	}

	// Sermon archive. The /all listing exposes drafts, so it is admin only.
	sermonGroup := e.Group("/sermons")
	{
		sermonGroup.GET("", r.sermonHandler.ListPublished)
		sermonGroup.GET("/all", r.sermonHandler.ListAll, admin...)
		sermonGroup.GET("/:id", r.sermonHandler.Get)
		sermonGroup.POST("", r.sermonHandler.Create, admin...)
		sermonGroup.PUT("/:id", r.sermonHandler.Update, admin...)
		sermonGroup.DELETE("/:id", r.sermonHandler.Delete, admin...)
	}

	// News articles. Same shape as sermons, plus a category filter via query.
	newsGroup := e.Group("/news")
	{
		newsGroup.GET("", r.newsHandler.ListPublished)
		newsGroup.GET("/all", r.newsHandler.ListAll, admin...)
		newsGroup.GET("/:id", r.newsHandler.Get)
		newsGroup.POST("", r.newsHandler.Create, admin...)
		newsGroup.PUT("/:id", r.newsHandler.Update, admin...)
		newsGroup.DELETE("/:id", r.newsHandler.Delete, admin...)
	}
}
