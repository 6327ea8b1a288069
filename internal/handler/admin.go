package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/layout"
)

// AdminHandler serves the back-office shell.
type AdminHandler struct {
	Shells *Shells
}

func NewAdminHandler(shells *Shells) *AdminHandler { return &AdminHandler{Shells: shells} }

func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_dashboard", h.Shells.Page(c, layout.KindAdmin, "Dashboard Admin"))
}
