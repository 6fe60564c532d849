// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"places/internal/delivery/api/middleware"
	"places/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlaceHandler   *handler.PlaceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	placeHandler   *handler.PlaceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		placeHandler:   params.PlaceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Places are served under the versioned prefix and at the root.
	for _, prefix := range []string{"/api/v1/places", "/places"} {
		placesGroup := e.Group(prefix)
		placesGroup.Use(r.authMiddleware.Authenticate)
		RegisterPlaceRoutes(placesGroup, r.placeHandler)
	}
}

// RegisterPlaceRoutes mounts the place CRUD endpoints on g.
func RegisterPlaceRoutes(g *echo.Group, h *handler.PlaceHandler) {
	g.GET("", h.ListPlaces)
	g.POST("", h.CreatePlace)
	g.PUT("/:placeId", h.UpdatePlace)
	g.DELETE("/:placeId", h.DeletePlace)
}
