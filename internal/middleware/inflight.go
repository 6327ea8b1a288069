package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/metrics"
)

// InFlight rejects a form submission while an identical one (same visitor,
// same method and path) is still being processed.  A double-clicked submit
// button therefore reaches the backend once; the second request gets a 409
// instead of racing the first.
func InFlight() echo.MiddlewareFunc {
	var running sync.Map
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
				return next(c)
			}
			key := visitorKey(c) + " " + c.Request().Method + " " + c.Request().URL.Path
			if _, busy := running.LoadOrStore(key, struct{}{}); busy {
				metrics.DuplicateSubmit()
				return echo.NewHTTPError(http.StatusConflict, "Permintaan sebelumnya masih diproses. Mohon tunggu sebentar.")
			}
			defer running.Delete(key)
			return next(c)
		}
	}
}
