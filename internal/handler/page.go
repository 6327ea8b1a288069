package handler

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/middleware"
	"github.com/iliyamo/car-rental-web/internal/notification"
	"github.com/iliyamo/car-rental-web/internal/view"
)

// Messages shown when the backend gives nothing better.
const (
	msgNetwork = "Tidak dapat terhubung ke server. Periksa koneksi Anda lalu coba lagi."
	msgGeneric = "Terjadi kesalahan. Silakan coba lagi."
)

// newPage fills the fields every template needs.
func newPage(c echo.Context, title string) view.Page {
	return view.Page{
		Title:    title,
		Path:     c.Request().URL.Path,
		Identity: middleware.IdentityFrom(c),
	}
}

// Shells builds the dashboard chrome: sidebar items, the layout mode of the
// current viewport and the visitor's notifications.
type Shells struct {
	Breakpoint    int
	Notifications *notification.Registry
}

type navEntry struct{ label, href, icon string }

var navigation = map[layout.Kind][]navEntry{
	layout.KindCustomer: {
		{"Dashboard", "/dashboard", "home"},
		{"Promo", "/dashboard/promo", "tag"},
		{"Pengaturan", "/dashboard/settings", "settings"},
		{"Beranda", "/", "globe"},
	},
	layout.KindAdmin: {
		{"Dashboard", "/admin/dashboard", "home"},
		{"Beranda", "/", "globe"},
	},
}

// Page returns a page wrapped in the shell of kind.
func (s *Shells) Page(c echo.Context, kind layout.Kind, title string) view.Page {
	p := newPage(c, title)
	st := middleware.UIFrom(c)
	if st == nil {
		st = &layout.State{}
	}
	sh := st.Shell(kind)
	p.Shell = &view.Shell{
		Kind:       string(kind),
		Mode:       st.Mode(s.Breakpoint).String(),
		Collapsed:  sh.Collapsed,
		MobileOpen: sh.MobileOpen,
	}
	for _, n := range navigation[kind] {
		p.Shell.Nav = append(p.Shell.Nav, view.NavItem{
			Label:  n.label,
			Href:   n.href,
			Icon:   n.icon,
			Active: p.Path == n.href,
		})
	}
	if s.Notifications != nil && st.SID != "" {
		store := s.Notifications.For(st.SID)
		p.Notifications = store.List()
		p.Unread = store.UnreadCount()
	}
	return p
}

// localTarget returns raw when it is a same-site path, else fallback.
func localTarget(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return raw
}

// back returns the same-site page a form was posted from.
func back(c echo.Context, fallback string) string {
	if next := localTarget(c.FormValue("next"), ""); next != "" {
		return next
	}
	ref, err := url.Parse(c.Request().Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != c.Request().Host) {
		return fallback
	}
	target := ref.Path
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return localTarget(target, fallback)
}

// wantsJSON reports whether the client asked for JSON rather than a page.
func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
