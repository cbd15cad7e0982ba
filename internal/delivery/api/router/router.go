// Package router contains route registration for the API server.
package router

import (
	"arena/internal/delivery/api/middleware"
	"arena/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	HeroHandler    *handler.HeroHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	heroHandler    *handler.HeroHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		heroHandler:    params.HeroHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/ping", r.authHandler.Ping)
	}

	// Any bearer may read a hero; renaming also requires owning it.
	heroGroup := e.Group("/heroes", r.authMiddleware.Authenticate)
	{
		heroGroup.GET("/:id", r.heroHandler.GetHero)
		heroGroup.POST("", r.heroHandler.CreateHero)
		heroGroup.POST("/:id", r.heroHandler.RenameHero)
	}
}
