package middleware

// identity.go holds the accessors handlers use to reach per-request state
// installed by the middleware in this package.  Values are stored on the
// echo.Context under private keys and read back with typed helpers.

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/model"
	"github.com/iliyamo/car-rental-web/internal/session"
)

const (
	ctxSession = "session"
	ctxUI      = "ui"
)

// SessionFrom returns the request's session, or nil outside Session().
func SessionFrom(c echo.Context) *session.Session {
	s, _ := c.Get(ctxSession).(*session.Session)
	return s
}

// IdentityFrom decodes the identity from the stored credential.  It is
// derived on every call and never cached on the context.
func IdentityFrom(c echo.Context) *model.Identity {
	if s := SessionFrom(c); s != nil {
		return s.Identity()
	}
	return nil
}

// UIFrom returns the visitor's UI state, or nil outside UIState().
func UIFrom(c echo.Context) *layout.State {
	st, _ := c.Get(ctxUI).(*layout.State)
	return st
}

// visitorKey identifies the visitor for rate limiting and submit guards:
// the username when signed in, else the UI-session id, else "anon".
func visitorKey(c echo.Context) string {
	if id := IdentityFrom(c); id != nil && id.Username != "" {
		return "user:" + id.Username
	}
	if st := UIFrom(c); st != nil && st.SID != "" {
		return "sid:" + st.SID
	}
	return "anon"
}
