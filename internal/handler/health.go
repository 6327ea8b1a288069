package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is used by load balancers to check that the web tier is up.  It
// does not call the backend.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
