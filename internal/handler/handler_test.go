package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/layout"
	"github.com/iliyamo/car-rental-web/internal/middleware"
	"github.com/iliyamo/car-rental-web/internal/model"
	"github.com/iliyamo/car-rental-web/internal/notification"
	"github.com/iliyamo/car-rental-web/internal/repository"
	"github.com/iliyamo/car-rental-web/internal/session"
	"github.com/iliyamo/car-rental-web/internal/utils"
	"github.com/iliyamo/car-rental-web/internal/view"
)

// backendStub records calls and answers them from per-route responders.
type backendStub struct {
	mu         sync.Mutex
	calls      []*http.Request
	bodies     [][]byte
	responders map[string]http.HandlerFunc
}

func (b *backendStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	b.mu.Lock()
	b.calls = append(b.calls, r)
	b.bodies = append(b.bodies, body)
	fn := b.responders[r.Method+" "+r.URL.Path]
	b.mu.Unlock()
	if fn == nil {
		http.NotFound(w, r)
		return
	}
	fn(w, r)
}

func (b *backendStub) on(method, path string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responders[method+" "+path] = fn
}

func (b *backendStub) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *backendStub) last() (*http.Request, []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.calls) == 0 {
		return nil, nil
	}
	return b.calls[len(b.calls)-1], b.bodies[len(b.bodies)-1]
}

func jsonReply(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

type HandlerSuite struct {
	suite.Suite
	backend *backendStub
	server  *httptest.Server
	e       *echo.Echo
	ui      *layout.UIStore
	notes   *notification.Registry
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.backend = &backendStub{responders: map[string]http.HandlerFunc{}}
	s.server = httptest.NewServer(s.backend)
	client := api.New(s.server.URL+"/api", 2*time.Second)

	s.ui = layout.NewUIStore("handler-test-secret", false)
	s.notes = notification.NewRegistry(nil)
	shells := &Shells{Breakpoint: layout.DefaultBreakpoint, Notifications: s.notes}
	shell := middleware.ShellNavigation(s.ui)

	e := echo.New()
	e.Renderer = view.MustNew()
	e.Validator = NewFormValidator()
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.Session(session.NewManager(utils.NewDecoder("")), false))
	e.Use(middleware.UIState(s.ui))

	pub := NewPublicHandler(repository.NewCarRepo(client), "https://rental.example")
	e.GET("/", pub.Home)
	e.GET("/blog/:slug", pub.BlogPost)
	e.GET("/robots.txt", pub.Robots)
	e.GET("/sitemap.xml", pub.Sitemap)

	auth := NewAuthHandler(repository.NewAuthRepo(client), s.notes, s.ui)
	e.GET("/login", auth.LoginForm)
	e.POST("/login", auth.Login)
	e.POST("/logout", auth.Logout)
	e.GET("/forgot-password", auth.ForgotForm)
	e.POST("/forgot-password", auth.ForgotSubmit)
	e.GET("/verify-otp", auth.VerifyForm)
	e.POST("/verify-otp", auth.VerifySubmit)

	cust := NewCustomerHandler(shells, repository.NewProfileRepo(client), repository.NewPromoRepo(client))
	g := e.Group("/dashboard", middleware.RequireCustomerArea(), shell)
	g.GET("", cust.Dashboard)
	g.GET("/settings", cust.Settings)
	g.POST("/settings", cust.SaveSettings)
	g.GET("/promo", cust.Promo)

	lay := NewLayoutHandler(s.ui, layout.DefaultBreakpoint)
	e.POST("/ui/viewport", lay.Viewport)
	e.POST("/ui/sidebar/toggle", lay.Toggle)
	e.POST("/ui/sidebar/open", lay.Open)

	n := NewNotificationHandler(s.notes)
	e.GET("/notifications", n.List, middleware.RequireSignedIn())
	e.POST("/notifications/read-all", n.ReadAll, middleware.RequireSignedIn())
	e.POST("/notifications/:id/clear", n.Clear, middleware.RequireSignedIn())
	s.e = e
}

func (s *HandlerSuite) TearDownTest() {
	s.server.Close()
}

func (s *HandlerSuite) credential(role model.Role) *http.Cookie {
	tok, err := utils.NewAccessToken("backend-secret", model.Identity{UserID: 9, Username: "budi", Email: "budi@example.com", Role: role}, time.Hour)
	s.Require().NoError(err)
	return &http.Cookie{Name: session.AccessCookie, Value: tok.Token}
}

// uiCookie returns a UI-session cookie for a visitor measured at width.
func (s *HandlerSuite) uiCookie(sid string, width int) *http.Cookie {
	rec := httptest.NewRecorder()
	s.Require().NoError(s.ui.Save(httptest.NewRequest(http.MethodGet, "/", nil), rec, &layout.State{SID: sid, Width: width}))
	return rec.Result().Cookies()[0]
}

func (s *HandlerSuite) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func form(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// cookieNamed returns the last cookie called name set by rec.
func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}

func (s *HandlerSuite) TestVerifyOTPMismatchMakesNoBackendCall() {
	rec := s.do(form(http.MethodPost, "/verify-otp", url.Values{
		"email":            {"user@example.com"},
		"otp":              {"123456"},
		"new_password":     {"rahasia-baru-1"},
		"confirm_password": {"rahasia-baru-2"},
	}))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "Konfirmasi kata sandi tidak cocok.")
	s.Equal(0, s.backend.count())
}

func (s *HandlerSuite) TestVerifyOTPShortCodeMakesNoBackendCall() {
	rec := s.do(form(http.MethodPost, "/verify-otp", url.Values{
		"email":            {"user@example.com"},
		"otp":              {"123"},
		"new_password":     {"rahasia-baru-1"},
		"confirm_password": {"rahasia-baru-1"},
	}))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "Harus tepat 6 karakter.")
	s.Equal(0, s.backend.count())
}

func (s *HandlerSuite) TestRequestOTPThenVerifyShowsEmailReadOnly() {
	s.backend.on(http.MethodPost, "/api/users/password-reset/request/", jsonReply(http.StatusOK, map[string]string{"message": "OTP terkirim"}))

	rec := s.do(form(http.MethodPost, "/forgot-password", url.Values{"email": {"user@example.com"}}))
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	location := rec.Header().Get(echo.HeaderLocation)
	s.Equal("/verify-otp?email=user%40example.com", location)

	_, body := s.backend.last()
	s.JSONEq(`{"email":"user@example.com"}`, string(body))

	rec = s.do(httptest.NewRequest(http.MethodGet, location, nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `name="email" type="email" value="user@example.com" readonly`)
}

func (s *HandlerSuite) TestVerifyWithoutEmailRestartsReset() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/verify-otp", nil))
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/forgot-password", rec.Header().Get(echo.HeaderLocation))
}

func (s *HandlerSuite) TestVerifyOTPBackendFieldError() {
	s.backend.on(http.MethodPost, "/api/users/password-reset/confirm/", jsonReply(http.StatusBadRequest, map[string][]string{"otp": {"Kode OTP salah."}}))

	rec := s.do(form(http.MethodPost, "/verify-otp", url.Values{
		"email":            {"user@example.com"},
		"otp":              {"654321"},
		"new_password":     {"rahasia-baru-1"},
		"confirm_password": {"rahasia-baru-1"},
	}))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "Kode OTP salah.")
	s.Equal(1, s.backend.count())
}

func (s *HandlerSuite) TestVerifyOTPSuccessRedirectsToLogin() {
	s.backend.on(http.MethodPost, "/api/users/password-reset/confirm/", jsonReply(http.StatusOK, map[string]string{"message": "ok"}))

	rec := s.do(form(http.MethodPost, "/verify-otp", url.Values{
		"email":            {"user@example.com"},
		"otp":              {"654321"},
		"new_password":     {"rahasia-baru-1"},
		"confirm_password": {"rahasia-baru-1"},
	}))

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/login?reset=success", rec.Header().Get(echo.HeaderLocation))
	_, body := s.backend.last()
	s.JSONEq(`{"email":"user@example.com","otp":"654321","new_password":"rahasia-baru-1","confirm_password":"rahasia-baru-1"}`, string(body))
}

func (s *HandlerSuite) TestLoginRedirectsByRole() {
	for role, landing := range map[model.Role]string{
		model.RoleAdmin:    session.AdminLanding,
		model.RoleCustomer: session.CustomerLanding,
	} {
		access := s.credential(role).Value
		s.backend.on(http.MethodPost, "/api/users/login/", jsonReply(http.StatusOK, map[string]string{"access": access, "refresh": "refresh-opaque"}))

		rec := s.do(form(http.MethodPost, "/login", url.Values{"username": {"budi"}, "password": {"rahasia"}}))

		s.Equal(http.StatusSeeOther, rec.Code, role)
		s.Equal(landing, rec.Header().Get(echo.HeaderLocation), role)
		s.Require().NotNil(cookieNamed(rec, session.AccessCookie))
		s.Equal(access, cookieNamed(rec, session.AccessCookie).Value)
		s.Equal("refresh-opaque", cookieNamed(rec, session.RefreshCookie).Value)
	}
	_, body := s.backend.last()
	s.JSONEq(`{"username":"budi","password":"rahasia"}`, string(body))
}

func (s *HandlerSuite) TestLoginHonoursNextInsideOwnArea() {
	s.backend.on(http.MethodPost, "/api/users/login/", jsonReply(http.StatusOK, map[string]string{"access": s.credential(model.RoleCustomer).Value}))

	rec := s.do(form(http.MethodPost, "/login", url.Values{"username": {"budi"}, "password": {"x"}, "next": {"/dashboard/promo"}}))
	s.Equal("/dashboard/promo", rec.Header().Get(echo.HeaderLocation))

	rec = s.do(form(http.MethodPost, "/login", url.Values{"username": {"budi"}, "password": {"x"}, "next": {"/admin/dashboard"}}))
	s.Equal(session.CustomerLanding, rec.Header().Get(echo.HeaderLocation))

	rec = s.do(form(http.MethodPost, "/login", url.Values{"username": {"budi"}, "password": {"x"}, "next": {"//evil.example/dashboard"}}))
	s.Equal(session.CustomerLanding, rec.Header().Get(echo.HeaderLocation))
}

func (s *HandlerSuite) TestLoginShowsBackendMessage() {
	s.backend.on(http.MethodPost, "/api/users/login/", jsonReply(http.StatusUnauthorized, map[string]string{"detail": "Akun belum diaktifkan."}))

	rec := s.do(form(http.MethodPost, "/login", url.Values{"username": {"budi"}, "password": {"salah"}}))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Akun belum diaktifkan.")
	s.Contains(rec.Body.String(), `value="budi"`)
	s.Nil(cookieNamed(rec, session.AccessCookie))
}

func (s *HandlerSuite) TestLoginFallsBackToGenericMessage() {
	s.backend.on(http.MethodPost, "/api/users/login/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("<html>nope</html>"))
	})

	rec := s.do(form(http.MethodPost, "/login", url.Values{"username": {"budi"}, "password": {"salah"}}))
	s.Contains(rec.Body.String(), "Username atau kata sandi salah.")
}

func (s *HandlerSuite) TestLoginNetworkFailure() {
	s.server.Close()

	rec := s.do(form(http.MethodPost, "/login", url.Values{"username": {"budi"}, "password": {"rahasia"}}))

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), msgNetwork)
}

func (s *HandlerSuite) TestLoginValidationMakesNoBackendCall() {
	rec := s.do(form(http.MethodPost, "/login", url.Values{"username": {"  "}}))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "Wajib diisi.")
	s.Equal(0, s.backend.count())
}

func (s *HandlerSuite) TestLoginPageRedirectsSignedInVisitor() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/login", nil), s.credential(model.RoleAdmin))
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal(session.AdminLanding, rec.Header().Get(echo.HeaderLocation))
}

func (s *HandlerSuite) TestLoginPageShowsResetSuccess() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/login?reset=success", nil))
	s.Contains(rec.Body.String(), "Kata sandi berhasil diubah.")
}

func (s *HandlerSuite) TestLogoutClearsCredentialsAndNotifications() {
	ui := s.uiCookie("sid-logout", 1280)
	s.notes.For("sid-logout").MarkAllAsRead()
	s.Require().Equal(1, s.notes.Len())

	rec := s.do(httptest.NewRequest(http.MethodPost, "/logout", nil), s.credential(model.RoleCustomer), ui)

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal(session.LoginPath, rec.Header().Get(echo.HeaderLocation))
	s.Equal(-1, cookieNamed(rec, session.AccessCookie).MaxAge)
	s.Equal(-1, cookieNamed(rec, session.RefreshCookie).MaxAge)
	s.Equal(0, s.notes.Len())

	again := s.do(httptest.NewRequest(http.MethodPost, "/logout", nil))
	s.Equal(http.StatusSeeOther, again.Code)
	s.Equal(session.LoginPath, again.Header().Get(echo.HeaderLocation))
}

func (s *HandlerSuite) TestPromoEnvelopeAndBareArrayRenderIdentically() {
	promos := []map[string]any{{
		"code":            "HEMAT50",
		"name":            "Hemat 50 Ribu",
		"description":     "Potongan untuk sewa minimal dua hari.",
		"discount_type":   "nominal",
		"discount_value":  "50000",
		"max_discount":    "0",
		"min_transaction": "300000",
		"quota":           12,
		"expired_at":      "2030-12-31",
	}}
	cred, ui := s.credential(model.RoleCustomer), s.uiCookie("sid-promo", 1280)

	s.backend.on(http.MethodGet, "/api/promo/", jsonReply(http.StatusOK, promos))
	bare := s.do(httptest.NewRequest(http.MethodGet, "/dashboard/promo", nil), cred, ui)

	s.backend.on(http.MethodGet, "/api/promo/", jsonReply(http.StatusOK, map[string]any{"count": 1, "results": promos}))
	envelope := s.do(httptest.NewRequest(http.MethodGet, "/dashboard/promo", nil), cred, ui)

	s.Equal(http.StatusOK, bare.Code)
	s.Contains(bare.Body.String(), "HEMAT50")
	s.Contains(bare.Body.String(), "Rp50.000")
	s.Equal(bare.Body.String(), envelope.Body.String())

	req, _ := s.backend.last()
	s.Equal("Bearer "+cred.Value, req.Header.Get("Authorization"))
}

func (s *HandlerSuite) TestDashboardRequiresMeasuredViewport() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), s.credential(model.RoleCustomer))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `action="/ui/viewport"`)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), s.credential(model.RoleCustomer), s.uiCookie("sid-dash", 1280))
	s.Contains(rec.Body.String(), "Halo, budi")
	s.Contains(rec.Body.String(), "mode-desktop")
}

func (s *HandlerSuite) TestSettingsSendsMultipartWhenAvatarAttached() {
	s.backend.on(http.MethodPatch, "/api/users/profile/", jsonReply(http.StatusOK, map[string]string{"username": "budi"}))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	s.Require().NoError(mw.WriteField("full_name", "Budi Santoso"))
	s.Require().NoError(mw.WriteField("phone", "08123456789"))
	fw, err := mw.CreateFormFile("avatar", "me.png")
	s.Require().NoError(err)
	_, _ = fw.Write(append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...))
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/settings", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := s.do(req, s.credential(model.RoleCustomer), s.uiCookie("sid-settings", 1280))

	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/dashboard/settings?saved=1", rec.Header().Get(echo.HeaderLocation))

	sent, body := s.backend.last()
	s.True(strings.HasPrefix(sent.Header.Get("Content-Type"), "multipart/form-data; boundary="))
	s.Contains(string(body), `name="full_name"`)
	s.Contains(string(body), `name="avatar"; filename="me.png"`)
}

func (s *HandlerSuite) TestSettingsSendsJSONWithoutAvatar() {
	s.backend.on(http.MethodPatch, "/api/users/profile/", jsonReply(http.StatusOK, map[string]string{"username": "budi"}))

	rec := s.do(form(http.MethodPost, "/dashboard/settings", url.Values{"full_name": {"Budi Santoso"}, "address": {"Jl. Merdeka 1"}}),
		s.credential(model.RoleCustomer), s.uiCookie("sid-settings", 1280))

	s.Equal(http.StatusSeeOther, rec.Code)
	sent, body := s.backend.last()
	s.Equal("application/json", sent.Header.Get("Content-Type"))
	s.JSONEq(`{"full_name":"Budi Santoso","phone":"","address":"Jl. Merdeka 1"}`, string(body))
}

func (s *HandlerSuite) TestHomeSurvivesBackendFailure() {
	s.backend.on(http.MethodGet, "/api/mobil/rekomendasi/", jsonReply(http.StatusInternalServerError, map[string]string{}))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Rekomendasi mobil belum dapat dimuat.")
	s.Contains(rec.Body.String(), "Belum ada rekomendasi mobil saat ini.")
	s.Equal("no-store", rec.Header().Get(echo.HeaderCacheControl))
}

func (s *HandlerSuite) TestHomeListsRecommendedCars() {
	s.backend.on(http.MethodGet, "/api/mobil/rekomendasi/", jsonReply(http.StatusOK, []map[string]any{
		{"id": 1, "name": "Avanza", "brand": "Toyota", "price_per_day": 350000, "status": "available", "popularity": 3},
		{"id": 2, "name": "Xpander", "brand": "Mitsubishi", "price_per_day": 400000, "status": "available", "popularity": 9},
	}))

	body := s.do(httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

	s.Contains(body, "Rp350.000")
	s.Less(strings.Index(body, "Xpander"), strings.Index(body, "Avanza"))
}

func (s *HandlerSuite) TestUnknownBlogPostRendersErrorPage() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/blog/tidak-ada", nil))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "Artikel tidak ditemukan.")

	req := httptest.NewRequest(http.MethodGet, "/blog/tidak-ada", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec = s.do(req)
	s.JSONEq(`{"error":"Artikel tidak ditemukan."}`, rec.Body.String())
}

func (s *HandlerSuite) TestRobotsAndSitemap() {
	robots := s.do(httptest.NewRequest(http.MethodGet, "/robots.txt", nil)).Body.String()
	s.Contains(robots, "Disallow: /admin/\n")
	s.Contains(robots, "Disallow: /login/\n")
	s.Contains(robots, "Disallow: /login\n")
	s.Contains(robots, "Sitemap: https://rental.example/sitemap.xml")

	sitemap := s.do(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)).Body.String()
	s.Contains(sitemap, "<loc>https://rental.example/</loc>")
	s.Contains(sitemap, "<loc>https://rental.example/blog/")
	s.NotContains(sitemap, "/admin")
}

func (s *HandlerSuite) TestNotificationsReadAllAsJSON() {
	cred, ui := s.credential(model.RoleCustomer), s.uiCookie("sid-notes", 1280)

	req := httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := s.do(req, cred, ui)

	s.Require().Equal(http.StatusOK, rec.Code)
	var out notificationList
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Equal(0, out.Unread)
	s.NotEmpty(out.Items)
}

func (s *HandlerSuite) TestNotificationClearRedirectsBack() {
	cred, ui := s.credential(model.RoleCustomer), s.uiCookie("sid-notes", 1280)
	id := s.notes.For("sid-notes").List()[0].ID

	req := httptest.NewRequest(http.MethodPost, "/notifications/"+id+"/clear", nil)
	req.Header.Set("Referer", "http://example.com/dashboard/promo")
	req.Host = "example.com"
	rec := s.do(req, cred, ui)

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/dashboard/promo", rec.Header().Get(echo.HeaderLocation))
	for _, n := range s.notes.For("sid-notes").List() {
		s.NotEqual(id, n.ID)
	}
}

func (s *HandlerSuite) TestNotificationsRequireSignIn() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/notifications", nil), s.uiCookie("sid-anon", 1280))
	s.Equal(http.StatusSeeOther, rec.Code)
}

func (s *HandlerSuite) TestMobileToggleClosesDrawerWithoutCollapsing() {
	ui := s.uiCookie("sid-mobile", 390)

	rec := s.do(form(http.MethodPost, "/ui/sidebar/open", url.Values{"shell": {"customer"}, "next": {"/dashboard"}}), ui)
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	ui = cookieNamed(rec, layout.UICookie)
	s.Require().NotNil(ui)

	rec = s.do(form(http.MethodPost, "/ui/sidebar/toggle", url.Values{"shell": {"customer"}, "next": {"/dashboard"}}), ui)
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	ui = cookieNamed(rec, layout.UICookie)

	st, fresh := s.ui.Load(requestWith(ui))
	s.False(fresh)
	s.False(st.Customer.MobileOpen)
	s.False(st.Customer.Collapsed)
}

func (s *HandlerSuite) TestViewportMeasurementRedirectsToNext() {
	rec := s.do(form(http.MethodPost, "/ui/viewport", url.Values{"width": {"1440"}, "next": {"/dashboard"}}))
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/dashboard", rec.Header().Get(echo.HeaderLocation))

	st, _ := s.ui.Load(requestWith(cookieNamed(rec, layout.UICookie)))
	s.Equal(1440, st.Width)

	bad := s.do(form(http.MethodPost, "/ui/viewport", url.Values{"width": {"-5"}}))
	s.Equal(http.StatusBadRequest, bad.Code)
}

func requestWith(c *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if c != nil {
		req.AddCookie(c)
	}
	return req
}

func TestLocalTarget(t *testing.T) {
	assert.Equal(t, "/dashboard?x=1", localTarget("/dashboard?x=1", "/"))
	assert.Equal(t, "/", localTarget("https://evil.example/", "/"))
	assert.Equal(t, "/", localTarget("//evil.example/", "/"))
	assert.Equal(t, "/", localTarget(`/\evil.example`, "/"))
	assert.Equal(t, "/", localTarget("", "/"))
}

func TestFieldErrorsUseFormNames(t *testing.T) {
	v := NewFormValidator()
	err := v.Validate(&verifyForm{Email: "bukan-email", OTP: "12", NewPassword: "pendek", ConfirmPassword: "lain"})
	require.Error(t, err)

	errs := fieldErrors(err)
	assert.Equal(t, "Format email tidak valid.", errs["email"])
	assert.Equal(t, "Harus tepat 6 karakter.", errs["otp"])
	assert.Equal(t, "Minimal 8 karakter.", errs["new_password"])
	assert.Equal(t, "Konfirmasi kata sandi tidak cocok.", errs["confirm_password"])
}
