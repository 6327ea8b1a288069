// Package layout holds the dashboard shells' UI state: sidebar collapse,
// mobile drawer, and the viewport class every shell derives from one shared
// measurement.
package layout

// Mode is the viewport class the shells render for.
type Mode int

const (
	// ModeUnknown means the viewport has not been measured yet; shells must
	// not render content in this mode.
	ModeUnknown Mode = iota
	ModeMobile
	ModeDesktop
)

// DefaultBreakpoint is the width in pixels from which the desktop layout applies.
const DefaultBreakpoint = 1024

// maxWidth bounds reported widths; anything larger is a bogus report.
const maxWidth = 16384

func (m Mode) String() string {
	switch m {
	case ModeMobile:
		return "mobile"
	case ModeDesktop:
		return "desktop"
	}
	return "unknown"
}

// ModeFor classifies width against breakpoint.  It is the single place the
// breakpoint comparison happens.
func ModeFor(width, breakpoint int) Mode {
	if width <= 0 {
		return ModeUnknown
	}
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width >= breakpoint {
		return ModeDesktop
	}
	return ModeMobile
}
