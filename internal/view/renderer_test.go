package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-web/internal/content"
	"github.com/iliyamo/car-rental-web/internal/model"
)

func render(t *testing.T, r *Renderer, name string, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, p, nil))
	return buf.String()
}

func shell() *Shell {
	return &Shell{Kind: "customer", Mode: "desktop", Nav: []NavItem{{Label: "Dashboard", Href: "/dashboard", Active: true}}}
}

func TestEveryPageRenders(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	post := content.Posts()[0]
	id := &model.Identity{Username: "budi", Email: "budi@example.com", Role: model.RoleCustomer}
	pages := map[string]Page{
		"home":            {Path: "/", Data: HomeData{Cars: []model.Car{{Name: "Avanza", Brand: "Toyota", PricePerDay: decimal.NewFromInt(350000)}}, Testimonials: content.Testimonials()}},
		"terms":           {Data: content.Terms()},
		"blog":            {Data: content.Posts()},
		"blog_post":       {Data: post},
		"testimonials":    {Data: content.Testimonials()},
		"login":           {Form: map[string]string{"username": "budi"}},
		"forgot_password": {},
		"verify_otp":      {Form: map[string]string{"email": "user@example.com"}},
		"error":           {Data: ErrorData{Status: 404, Message: "Halaman tidak ditemukan"}},
		"measure":         {Data: MeasureData{Next: "/dashboard"}},
		"dashboard":       {Identity: id, Shell: shell()},
		"settings":        {Identity: id, Shell: shell(), Data: model.Profile{Username: "budi"}},
		"promo":           {Identity: id, Shell: shell(), Data: []model.Promo{{Code: "HEMAT20", DiscountType: model.DiscountPercent, DiscountValue: decimal.NewFromInt(20)}}},
		"admin_dashboard": {Identity: &model.Identity{Username: "admin", Role: model.RoleAdmin}, Shell: &Shell{Kind: "admin", Mode: "mobile", MobileOpen: true}},
	}
	for name := range layouts {
		p, ok := pages[name]
		require.True(t, ok, "no fixture for page %s", name)
		out := render(t, r, name, p)
		assert.Contains(t, out, "<html", name)
	}
}

func TestVerifyOTPEmailIsReadOnly(t *testing.T) {
	r := MustNew()
	out := render(t, r, "verify_otp", Page{Form: map[string]string{"email": "user@example.com"}})
	assert.Contains(t, out, `name="email" type="email" value="user@example.com" readonly`)
}

func TestShellReflectsState(t *testing.T) {
	r := MustNew()
	out := render(t, r, "dashboard", Page{Shell: &Shell{Kind: "customer", Mode: "desktop", Collapsed: true}})
	assert.Contains(t, out, "sidebar-mini")
	assert.NotContains(t, out, "drawer-open")
	assert.NotContains(t, out, "/ui/sidebar/open")

	out = render(t, r, "dashboard", Page{Shell: &Shell{Kind: "customer", Mode: "mobile", MobileOpen: true}})
	assert.Contains(t, out, "drawer-open")
	assert.Contains(t, out, "/ui/sidebar/open")
}

func TestUnknownPage(t *testing.T) {
	r := MustNew()
	assert.Error(t, r.Render(&bytes.Buffer{}, "nope", Page{}, nil))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "Rp350.000", Rupiah(decimal.NewFromInt(350000)))
	assert.Equal(t, "Rp1.250.000", Rupiah(decimal.RequireFromString("1249999.6")))
	assert.Equal(t, "12 Maret 2025", Date(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", Date(time.Time{}))
	assert.Equal(t, "20%", Discount(model.Promo{DiscountType: model.DiscountPercent, DiscountValue: decimal.NewFromInt(20)}))
	assert.Equal(t, "Rp50.000", Discount(model.Promo{DiscountType: model.DiscountNominal, DiscountValue: decimal.NewFromInt(50000)}))
	assert.Equal(t, "BS", Initials("budi santoso wijaya"))
	assert.Equal(t, "ÉŻ", Initials("élodie żaneta"))
	assert.Equal(t, "Ö", Initials("  ömer "))
	assert.Empty(t, Initials(""))
	assert.True(t, strings.HasPrefix(Number(1500), "1.500"))
}
