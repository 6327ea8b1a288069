package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/middleware"
)

// LayoutHandler records viewport measurements and sidebar controls in the
// UI session.
type LayoutHandler struct {
	UI         *layout.UIStore
	Breakpoint int
}

func NewLayoutHandler(ui *layout.UIStore, breakpoint int) *LayoutHandler {
	if breakpoint <= 0 {
		breakpoint = layout.DefaultBreakpoint
	}
	return &LayoutHandler{UI: ui, Breakpoint: breakpoint}
}

// Viewport stores the measured window width and returns to the page that
// asked for it.
func (h *LayoutHandler) Viewport(c echo.Context) error {
	st := middleware.UIFrom(c)
	width, err := strconv.Atoi(c.FormValue("width"))
	if st == nil || err != nil || !st.Measure(width) {
		return echo.NewHTTPError(http.StatusBadRequest, "Lebar layar tidak valid.")
	}
	if err := h.UI.Save(c.Request(), c.Response(), st); err != nil {
		return err
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"width": st.Width, "mode": st.Mode(h.Breakpoint).String()})
	}
	return c.Redirect(http.StatusSeeOther, localTarget(c.FormValue("next"), "/"))
}

// Toggle is the sidebar button: it closes the drawer on mobile and
// collapses or expands the sidebar on desktop.
func (h *LayoutHandler) Toggle(c echo.Context) error {
	return h.update(c, func(st *layout.State, kind layout.Kind) { st.Toggle(kind, h.Breakpoint) })
}

// Open is the header menu button on mobile.
func (h *LayoutHandler) Open(c echo.Context) error {
	return h.update(c, func(st *layout.State, kind layout.Kind) { st.OpenDrawer(kind) })
}

func (h *LayoutHandler) update(c echo.Context, fn func(*layout.State, layout.Kind)) error {
	st := middleware.UIFrom(c)
	if st == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Sesi tampilan tidak ditemukan.")
	}
	kind := layout.ParseKind(c.FormValue("shell"))
	fn(st, kind)
	if err := h.UI.Save(c.Request(), c.Response(), st); err != nil {
		return err
	}
	if wantsJSON(c) {
		sh := st.Shell(kind)
		return c.JSON(http.StatusOK, echo.Map{"collapsed": sh.Collapsed, "mobile_open": sh.MobileOpen})
	}
	return c.Redirect(http.StatusSeeOther, back(c, "/"))
}
