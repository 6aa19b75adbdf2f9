// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"warden/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler *handler.AdminHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler *handler.AdminHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler: params.AdminHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Both admin routes are public; token verification stays a service-level
// capability until protected routes exist.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	adminGroup := e.Group("/api/admin")
	{
		adminGroup.POST("/register", r.adminHandler.Register)
		adminGroup.POST("/login", r.adminHandler.Login)
	}
}
