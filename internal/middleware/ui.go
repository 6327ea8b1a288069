package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/view"
)

// UIState loads the visitor's UI session (sid, viewport width, shell
// state).  A new visitor gets a sid and the cookie is written straight away
// so that concurrent requests agree on it.
func UIState(store *layout.UIStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st, fresh := store.Load(c.Request())
			c.Set(ctxUI, st)
			if fresh {
				if err := store.Save(c.Request(), c.Response(), st); err != nil {
					c.Logger().Warnf("ui-session: save failed: %v", err)
				}
			}
			return next(c)
		}
	}
}

// ShellNavigation runs on dashboard pages.  It withholds content until the
// viewport has been measured once, rendering the measurement page instead,
// and closes the mobile drawer whenever the visitor moves to another route.
func ShellNavigation(store *layout.UIStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st := UIFrom(c)
			if st == nil || c.Request().Method != http.MethodGet {
				return next(c)
			}
			if !st.Measured() {
				return c.Render(http.StatusOK, "measure", view.Page{
					Path: c.Request().URL.Path,
					Data: view.MeasureData{Next: c.Request().URL.RequestURI()},
				})
			}
			if st.Navigate(c.Request().URL.Path) {
				if err := store.Save(c.Request(), c.Response(), st); err != nil {
					c.Logger().Warnf("ui-session: save failed: %v", err)
				}
			}
			return next(c)
		}
	}
}
