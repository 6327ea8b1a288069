package view

import (
	"github.com/iliyamo/car-rental-web/internal/model"
)

// Page is the data every template receives.  Handlers fill the parts they
// need; Data carries the page specific payload.
type Page struct {
	Title    string
	Path     string
	Identity *model.Identity

	// Form echoes submitted values back into inputs; Errors holds field
	// level messages keyed by input name.
	Form    map[string]string
	Errors  map[string]string
	Error   string // page level error (backend or network)
	Success string

	Shell         *Shell
	Notifications []model.Notification
	Unread        int

	Data any
}

// Shell describes the dashboard chrome around a page.
type Shell struct {
	Kind       string // admin | customer
	Mode       string // mobile | desktop
	Collapsed  bool
	MobileOpen bool
	Nav        []NavItem
}

// NavItem is a sidebar link.
type NavItem struct {
	Label  string
	Href   string
	Icon   string
	Active bool
}

// Value returns the submitted value of a form field.
func (p Page) Value(name string) string { return p.Form[name] }

// FieldError returns the error message of a form field.
func (p Page) FieldError(name string) string { return p.Errors[name] }
