// Package session keeps the visitor's authentication state.  The only
// stored artefact is the credential pair in the cookie jar; the identity is
// decoded from the access credential every time it is asked for, so it can
// never disagree with what is stored.
package session

import (
	"errors"
	"time"

	"github.com/iliyamo/car-rental-web/internal/model"
	"github.com/iliyamo/car-rental-web/internal/utils"
)

// Routes the session redirects to.
const (
	LoginPath       = "/login"
	AdminLanding    = "/admin/dashboard"
	CustomerLanding = "/dashboard"
)

// LandingFor returns the post-login destination for role.
func LandingFor(role model.Role) string {
	if role.IsAdmin() {
		return AdminLanding
	}
	return CustomerLanding
}

// State is the session state machine: loading until the stored credential
// has been examined, then authenticated or anonymous.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "loading"
}

// Transition kinds reported to the manager's observer.
const (
	TransitionLogin   = "login"
	TransitionLogout  = "logout"
	TransitionExpired = "expired"
	TransitionInvalid = "invalid"
)

// Transition describes a change into or out of the authenticated state.
type Transition struct {
	Kind       string
	Identity   *model.Identity // nil for invalid credentials
	RemoteIP   string
	Path       string
	OccurredAt time.Time
}

// Meta is request information copied onto transitions.
type Meta struct {
	RemoteIP string
	Path     string
}

// Resolution is the settled outcome of a state change.  Redirect is empty
// when the caller should carry on rendering.
type Resolution struct {
	State    State
	Identity *model.Identity
	Redirect string
}

// Manager holds the configuration shared by every session.
type Manager struct {
	decoder    *utils.Decoder
	accessTTL  time.Duration
	refreshTTL time.Duration
	observe    func(Transition)
	now        func() time.Time
}

// Option customises a Manager.
type Option func(*Manager)

// WithObserver registers fn to be told about every transition.
func WithObserver(fn func(Transition)) Option { return func(m *Manager) { m.observe = fn } }

// WithTTLs sets cookie lifetimes for the access and refresh credentials.
func WithTTLs(access, refresh time.Duration) Option {
	return func(m *Manager) {
		if access > 0 {
			m.accessTTL = access
		}
		if refresh > 0 {
			m.refreshTTL = refresh
		}
	}
}

// WithClock replaces the clock used for expiry checks.
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

// NewManager returns a Manager decoding credentials with decoder.  Defaults:
// access credential kept 1 day, refresh credential 7 days.
func NewManager(decoder *utils.Decoder, opts ...Option) *Manager {
	m := &Manager{
		decoder:    decoder,
		accessTTL:  24 * time.Hour,
		refreshTTL: 7 * 24 * time.Hour,
		now:        time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	m.decoder = m.decoder.WithClock(m.now)
	return m
}

// Open starts a session over jar in the loading state.
func (m *Manager) Open(jar Jar, meta Meta) *Session {
	return &Session{m: m, jar: jar, meta: meta, state: StateLoading}
}

// ErrInvalidCredential is returned by Login when the access credential
// cannot be decoded or is already expired.
var ErrInvalidCredential = errors.New("invalid access credential")

// Session is one visitor's view of the authentication state during one
// request.  It is not safe for concurrent use.
type Session struct {
	m     *Manager
	jar   Jar
	meta  Meta
	state State
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Resolve performs the initial transition out of loading: no credential
// settles anonymous; a valid one settles authenticated; an expired or
// unreadable one is purged and the visitor is sent to the login page.
func (s *Session) Resolve() Resolution {
	raw, ok := s.jar.Get(AccessCookie)
	if !ok {
		s.state = StateAnonymous
		return Resolution{State: StateAnonymous}
	}
	claims, err := s.m.decoder.Decode(raw)
	if err != nil {
		s.forceLogout(err)
		return Resolution{State: StateAnonymous, Redirect: LoginPath}
	}
	s.state = StateAuthenticated
	id := claims.Identity()
	return Resolution{State: StateAuthenticated, Identity: &id}
}

// Identity decodes the stored access credential.  It returns nil when there
// is none; a credential that no longer decodes is purged on the spot.
func (s *Session) Identity() *model.Identity {
	raw, ok := s.jar.Get(AccessCookie)
	if !ok {
		s.state = StateAnonymous
		return nil
	}
	claims, err := s.m.decoder.Decode(raw)
	if err != nil {
		s.forceLogout(err)
		return nil
	}
	s.state = StateAuthenticated
	id := claims.Identity()
	return &id
}

// AccessCredential returns the stored access credential, or "".
func (s *Session) AccessCredential() string {
	raw, _ := s.jar.Get(AccessCookie)
	return raw
}

// Login stores both credentials and redirects by role: admins to the admin
// dashboard, everyone else to the customer dashboard.
func (s *Session) Login(access, refresh string) (Resolution, error) {
	claims, err := s.m.decoder.Decode(access)
	if err != nil {
		s.purge()
		s.state = StateAnonymous
		return Resolution{State: StateAnonymous}, errors.Join(ErrInvalidCredential, err)
	}
	s.jar.Set(AccessCookie, access, s.m.accessTTL)
	if refresh != "" {
		s.jar.Set(RefreshCookie, refresh, s.m.refreshTTL)
	} else {
		s.jar.Delete(RefreshCookie)
	}
	s.state = StateAuthenticated
	id := claims.Identity()
	s.emit(TransitionLogin, &id)
	return Resolution{State: StateAuthenticated, Identity: &id, Redirect: LandingFor(id.Role)}, nil
}

// Logout purges both credentials and sends the visitor to the login page.
// Calling it again changes nothing.
func (s *Session) Logout() Resolution {
	var prev *model.Identity
	if raw, ok := s.jar.Get(AccessCookie); ok {
		if claims, err := s.m.decoder.Decode(raw); err == nil {
			id := claims.Identity()
			prev = &id
		}
	}
	hadCredential := s.hasCredentials()
	s.purge()
	s.state = StateAnonymous
	if hadCredential {
		s.emit(TransitionLogout, prev)
	}
	return Resolution{State: StateAnonymous, Redirect: LoginPath}
}

func (s *Session) forceLogout(cause error) {
	s.purge()
	s.state = StateAnonymous
	kind := TransitionInvalid
	if errors.Is(cause, utils.ErrExpiredCredential) {
		kind = TransitionExpired
	}
	s.emit(kind, nil)
}

func (s *Session) hasCredentials() bool {
	_, a := s.jar.Get(AccessCookie)
	_, r := s.jar.Get(RefreshCookie)
	return a || r
}

func (s *Session) purge() {
	s.jar.Delete(AccessCookie)
	s.jar.Delete(RefreshCookie)
}

func (s *Session) emit(kind string, id *model.Identity) {
	if s.m.observe == nil {
		return
	}
	s.m.observe(Transition{
		Kind:       kind,
		Identity:   id,
		RemoteIP:   s.meta.RemoteIP,
		Path:       s.meta.Path,
		OccurredAt: s.m.now().UTC(),
	})
}
