package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/metrics"
	"github.com/iliyamo/car-rental-web/internal/session"
)

// Session resolves the visitor's credential once per request.  The session
// is stored on the context and attached to the request context so backend
// calls carry the bearer credential.  A stored credential that is expired
// or unreadable has already been purged by Resolve; the visitor is then sent
// to the login page.
func Session(m *session.Manager, secureCookies bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			jar := session.NewCookieJar(c.Response(), req, secureCookies)
			sess := m.Open(jar, session.Meta{RemoteIP: c.RealIP(), Path: req.URL.Path})
			res := sess.Resolve()

			c.Set(ctxSession, sess)
			c.SetRequest(req.WithContext(api.WithCredentials(req.Context(), sess)))

			if res.Redirect != "" {
				metrics.Session("forced_logout")
				if req.URL.Path == res.Redirect {
					return next(c)
				}
				return c.Redirect(http.StatusSeeOther, res.Redirect)
			}
			metrics.Session(res.State.String())
			return next(c)
		}
	}
}
