package session

import (
	"net/http"
	"sync"
	"time"
)

// Cookie names of the two stored credentials.
const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Jar is the persistent credential storage.  In the web tier it is the
// browser's cookie jar, seen through one request/response pair.
type Jar interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAge time.Duration)
	Delete(name string)
}

type pending struct {
	value   string
	deleted bool
}

// CookieJar reads cookies from the request and writes Set-Cookie headers to
// the response.  Writes are also kept locally so that a read later in the
// same request sees what the browser will store, not what it sent.
type CookieJar struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
	writes map[string]pending
}

// NewCookieJar wraps one request/response pair.
func NewCookieJar(w http.ResponseWriter, r *http.Request, secure bool) *CookieJar {
	return &CookieJar{r: r, w: w, secure: secure, writes: map[string]pending{}}
}

func (j *CookieJar) Get(name string) (string, bool) {
	if p, ok := j.writes[name]; ok {
		if p.deleted {
			return "", false
		}
		return p.value, true
	}
	ck, err := j.r.Cookie(name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}

func (j *CookieJar) Set(name, value string, maxAge time.Duration) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	})
	j.writes[name] = pending{value: value}
}

func (j *CookieJar) Delete(name string) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	})
	j.writes[name] = pending{deleted: true}
}

// MemoryJar is an in-process Jar for tools and tests.
type MemoryJar struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
}

func NewMemoryJar() *MemoryJar {
	return &MemoryJar{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (j *MemoryJar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	v, ok := j.values[name]
	return v, ok
}

func (j *MemoryJar) Set(name, value string, maxAge time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.values[name] = value
	j.ttls[name] = maxAge
}

func (j *MemoryJar) Delete(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.values, name)
	delete(j.ttls, name)
}

// TTL returns the max age the named value was stored with.
func (j *MemoryJar) TTL(name string) time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ttls[name]
}

// Len reports how many values are stored.
func (j *MemoryJar) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.values)
}
