package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/model"
	"github.com/iliyamo/car-rental-web/internal/session"
)

// RequireRole returns a middleware that only lets through visitors whose
// credential carries one of roles.  Anonymous visitors are sent to the
// login page with the original path in ?next; signed-in visitors with a
// different role are sent to their own landing page instead of an error.
// It must run after Session().
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return requireIdentity(func(r model.Role) bool { return allowed[r] })
}

// RequireCustomerArea admits every signed-in visitor except admins.  Any
// role other than admin lands on the customer dashboard after login, so the
// customer area has to accept them all.
func RequireCustomerArea() echo.MiddlewareFunc {
	return requireIdentity(func(r model.Role) bool { return !r.IsAdmin() })
}

func requireIdentity(allow func(model.Role) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := IdentityFrom(c)
			if id == nil {
				target := session.LoginPath
				if c.Request().Method == http.MethodGet {
					target += "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
				}
				return c.Redirect(http.StatusSeeOther, target)
			}
			if !allow(id.Role) {
				return c.Redirect(http.StatusSeeOther, session.LandingFor(id.Role))
			}
			return next(c)
		}
	}
}

// RequireSignedIn admits any visitor holding a valid credential.
func RequireSignedIn() echo.MiddlewareFunc {
	return requireIdentity(func(model.Role) bool { return true })
}
