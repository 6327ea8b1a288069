package layout

// Kind names a dashboard shell.
type Kind string

const (
	KindAdmin    Kind = "admin"
	KindCustomer Kind = "customer"
)

// ParseKind maps a form value to a Kind, defaulting to the customer shell.
func ParseKind(s string) Kind {
	if s == string(KindAdmin) {
		return KindAdmin
	}
	return KindCustomer
}

// Shell is the sidebar state of one dashboard shell.
type Shell struct {
	Collapsed  bool // desktop: mini sidebar instead of the full one
	MobileOpen bool // mobile: drawer is showing
}

// State is everything the UI session remembers for a visitor.
type State struct {
	SID      string
	Width    int
	LastPath string
	Admin    Shell
	Customer Shell
}

// Shell returns the mutable state of kind.
func (s *State) Shell(kind Kind) *Shell {
	if kind == KindAdmin {
		return &s.Admin
	}
	return &s.Customer
}

// Measured reports whether a viewport width has been recorded.
func (s *State) Measured() bool { return s.Width > 0 }

// Mode derives the viewport class from the recorded width.
func (s *State) Mode(breakpoint int) Mode { return ModeFor(s.Width, breakpoint) }

// Measure records a viewport width.  Out of range values are rejected.
func (s *State) Measure(width int) bool {
	if width <= 0 || width > maxWidth {
		return false
	}
	s.Width = width
	return true
}

// Toggle is the sidebar control.  Below the breakpoint it closes the mobile
// drawer and leaves the collapse flag alone; at or above it flips the
// collapse flag.  Before the first measurement it does nothing.
func (s *State) Toggle(kind Kind, breakpoint int) {
	sh := s.Shell(kind)
	switch s.Mode(breakpoint) {
	case ModeMobile:
		sh.MobileOpen = false
	case ModeDesktop:
		sh.Collapsed = !sh.Collapsed
	}
}

// OpenDrawer opens the mobile drawer (header menu button).
func (s *State) OpenDrawer(kind Kind) { s.Shell(kind).MobileOpen = true }

// Navigate records a route change.  Moving to a different path closes every
// mobile drawer; staying on the same path keeps them as they are.  It
// reports whether the state changed.
func (s *State) Navigate(path string) bool {
	if path == s.LastPath {
		return false
	}
	s.LastPath = path
	s.Admin.MobileOpen = false
	s.Customer.MobileOpen = false
	return true
}
