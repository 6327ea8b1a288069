package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/handler"
	"github.com/iliyamo/car-rental-web/internal/middleware"
)

// RegisterCustomer registers the customer dashboard.  Every route requires
// a signed-in non-admin visitor; shell wraps the pages in the measured
// dashboard chrome.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, shell echo.MiddlewareFunc) {
	g := e.Group("/dashboard", middleware.RequireCustomerArea(), shell)
	g.GET("", h.Dashboard)
	g.GET("/settings", h.Settings)
	g.POST("/settings", h.SaveSettings)
	g.GET("/promo", h.Promo)
}
