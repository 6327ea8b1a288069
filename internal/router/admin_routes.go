package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/handler"
	"github.com/iliyamo/car-rental-web/internal/middleware"
	"github.com/iliyamo/car-rental-web/internal/model"
)

// RegisterAdmin registers the back-office shell for the admin role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, shell echo.MiddlewareFunc) {
	g := e.Group("/admin", middleware.RequireRole(model.RoleAdmin), shell)
	g.GET("/dashboard", h.Dashboard)
}
