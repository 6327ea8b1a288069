package router // package router registers the web tier's routes by area

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/handler"
	"github.com/iliyamo/car-rental-web/internal/metrics"
	"github.com/iliyamo/car-rental-web/internal/middleware"
)

// RegisterRoutes registers the operational endpoints: the health check used
// by load balancers and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", metrics.Handler())
}

// RegisterPublic registers the marketing site.  The page cache only ever
// serves anonymous visitors, so it is safe on every route here.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	e.GET("/", p.Home, cache)
	e.GET("/terms", p.Terms, cache)
	e.GET("/blog", p.Blog, cache)
	e.GET("/blog/:slug", p.BlogPost, cache)
	e.GET("/testimonials", p.Testimonials, cache)
	e.GET("/robots.txt", p.Robots, cache)
	e.GET("/sitemap.xml", p.Sitemap, cache)
}

// RegisterAuth registers login, logout and the two password reset steps.
// Form submissions pass through limit so credentials and codes cannot be
// guessed at speed.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limit echo.MiddlewareFunc) {
	e.GET("/login", a.LoginForm)
	e.POST("/login", a.Login, limit)
	e.GET("/logout", a.Logout)
	e.POST("/logout", a.Logout)

	e.GET("/forgot-password", a.ForgotForm)
	e.POST("/forgot-password", a.ForgotSubmit, limit)
	e.GET("/verify-otp", a.VerifyForm)
	e.POST("/verify-otp", a.VerifySubmit, limit)
}

// RegisterUI registers the endpoints behind the dashboard chrome: viewport
// measurement, sidebar controls and the notification panel.
func RegisterUI(e *echo.Echo, l *handler.LayoutHandler, n *handler.NotificationHandler) {
	ui := e.Group("/ui")
	ui.POST("/viewport", l.Viewport)
	ui.POST("/sidebar/toggle", l.Toggle)
	ui.POST("/sidebar/open", l.Open)

	g := e.Group("/notifications", middleware.RequireSignedIn())
	g.GET("", n.List)
	g.POST("/read-all", n.ReadAll)
	g.POST("/clear", n.ClearAll)
	g.POST("/:id/read", n.Read)
	g.POST("/:id/clear", n.Clear)
}
