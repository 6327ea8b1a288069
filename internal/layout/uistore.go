package layout

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// UICookie is the name of the signed UI-session cookie.
const UICookie = "ui"

// UIStore persists State in a signed cookie through gorilla/sessions.  It
// only ever holds presentation state; credentials live in their own cookies.
type UIStore struct {
	store sessions.Store
}

// NewUIStore returns a store signing cookies with secret.
func NewUIStore(secret string, secure bool) *UIStore {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &UIStore{store: cs}
}

// Load reads the visitor's state.  A missing or tampered cookie yields a
// fresh state with a new sid; fresh reports that it must be saved.
func (u *UIStore) Load(r *http.Request) (st *State, fresh bool) {
	// A decode error still returns a usable new session.
	sess, _ := u.store.Get(r, UICookie)
	st = &State{}
	if sess != nil {
		st.SID, _ = sess.Values["sid"].(string)
		st.Width, _ = sess.Values["w"].(int)
		st.LastPath, _ = sess.Values["path"].(string)
		st.Admin.Collapsed, _ = sess.Values["a.c"].(bool)
		st.Admin.MobileOpen, _ = sess.Values["a.m"].(bool)
		st.Customer.Collapsed, _ = sess.Values["c.c"].(bool)
		st.Customer.MobileOpen, _ = sess.Values["c.m"].(bool)
	}
	if st.SID == "" {
		st.SID = uuid.NewString()
		fresh = true
	}
	return st, fresh
}

// Save writes st back as a Set-Cookie header.
func (u *UIStore) Save(r *http.Request, w http.ResponseWriter, st *State) error {
	sess, _ := u.store.Get(r, UICookie)
	if sess == nil {
		sess = sessions.NewSession(u.store, UICookie)
	}
	sess.Values["sid"] = st.SID
	sess.Values["w"] = st.Width
	sess.Values["path"] = st.LastPath
	sess.Values["a.c"] = st.Admin.Collapsed
	sess.Values["a.m"] = st.Admin.MobileOpen
	sess.Values["c.c"] = st.Customer.Collapsed
	sess.Values["c.m"] = st.Customer.MobileOpen
	return sess.Save(r, w)
}

// Reset replaces the visitor's state with a fresh one carrying a new sid.
func (u *UIStore) Reset(r *http.Request, w http.ResponseWriter, st *State) error {
	*st = State{SID: uuid.NewString(), Width: st.Width}
	return u.Save(r, w, st)
}
