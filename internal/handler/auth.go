package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/middleware"
	"github.com/iliyamo/car-rental-web/internal/notification"
	"github.com/iliyamo/car-rental-web/internal/repository"
	"github.com/iliyamo/car-rental-web/internal/session"
)

// AuthHandler bundles the dependencies of the login, logout and password
// reset pages.
type AuthHandler struct {
	Auth          *repository.AuthRepo
	Notifications *notification.Registry
	UI            *layout.UIStore
}

func NewAuthHandler(auth *repository.AuthRepo, notes *notification.Registry, ui *layout.UIStore) *AuthHandler {
	if auth == nil || notes == nil || ui == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Auth: auth, Notifications: notes, UI: ui}
}

type loginForm struct {
	Username string `form:"username" validate:"required,notblank"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// LoginForm renders the login page.  Visitors who are already signed in go
// straight to their landing page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	if id := middleware.IdentityFrom(c); id != nil {
		return c.Redirect(http.StatusSeeOther, session.LandingFor(id.Role))
	}
	p := newPage(c, "Masuk")
	p.Form = map[string]string{"next": localTarget(c.QueryParam("next"), "")}
	if c.QueryParam("reset") == "success" {
		p.Success = "Kata sandi berhasil diubah. Silakan masuk dengan kata sandi baru."
	}
	return c.Render(http.StatusOK, "login", p)
}

// Login exchanges the submitted username and password for credentials,
// stores them and redirects by role.
func (h *AuthHandler) Login(c echo.Context) error {
	var f loginForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	f.Username = strings.TrimSpace(f.Username)
	p := newPage(c, "Masuk")
	p.Form = map[string]string{"username": f.Username, "next": localTarget(f.Next, "")}

	if errs, err := validateForm(c, &f); err != nil {
		return err
	} else if errs != nil {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "login", p)
	}
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return errors.New("login: session middleware not installed")
	}

	pair, err := h.Auth.Login(c.Request().Context(), f.Username, f.Password)
	if err != nil {
		p.Error = failureMessage(err, "Username atau kata sandi salah.")
		return c.Render(formStatus(err), "login", p)
	}
	res, err := sess.Login(pair.Access, pair.Refresh)
	if err != nil {
		c.Logger().Warnf("login: backend issued unusable credential for %s: %v", f.Username, err)
		p.Error = "Sesi login tidak valid. Silakan coba lagi."
		return c.Render(http.StatusBadGateway, "login", p)
	}
	return c.Redirect(http.StatusSeeOther, afterLogin(res, f.Next))
}

// afterLogin honours ?next only when it points into the area the role
// lands in, so a customer is never bounced through the admin guard.
func afterLogin(res session.Resolution, next string) string {
	if res.Identity == nil {
		return res.Redirect
	}
	landing := session.LandingFor(res.Identity.Role)
	next = localTarget(next, "")
	if next == landing || strings.HasPrefix(next, landing+"/") || strings.HasPrefix(next, landing+"?") {
		return next
	}
	return landing
}

// Logout clears both credentials, the visitor's notifications and shell
// state.  It is safe to call when already signed out.
func (h *AuthHandler) Logout(c echo.Context) error {
	target := session.LoginPath
	if sess := middleware.SessionFrom(c); sess != nil {
		target = sess.Logout().Redirect
	}
	if st := middleware.UIFrom(c); st != nil {
		h.Notifications.Drop(st.SID)
		if err := h.UI.Reset(c.Request(), c.Response(), st); err != nil {
			c.Logger().Warnf("logout: reset ui session: %v", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// failureMessage picks the text shown for a failed backend call: a generic
// network message, the backend's own message, or fallback.
func failureMessage(err error, fallback string) string {
	if errors.Is(err, api.ErrNetwork) {
		return msgNetwork
	}
	return api.Message(err, fallback)
}

// formStatus is the status a re-rendered form is served with.
func formStatus(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

// applyFieldErrors copies backend field messages for the named inputs into
// p.Errors and reports whether any were found.
func applyFieldErrors(err error, errs map[string]string, fields ...string) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	found := false
	for _, f := range fields {
		if msg := apiErr.Field(f); msg != "" {
			errs[f] = msg
			found = true
		}
	}
	return found
}
