package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/api"
	"github.com/iliyamo/car-rental-web/internal/content"
	"github.com/iliyamo/car-rental-web/internal/repository"
	"github.com/iliyamo/car-rental-web/internal/view"
)

// PublicHandler serves the marketing site.
type PublicHandler struct {
	Cars    *repository.CarRepo
	SiteURL string
}

func NewPublicHandler(cars *repository.CarRepo, siteURL string) *PublicHandler {
	return &PublicHandler{Cars: cars, SiteURL: siteURL}
}

// Home lists the recommended cars.  A backend failure does not take the
// page down: it renders with an inline message and no cars.
func (h *PublicHandler) Home(c echo.Context) error {
	p := newPage(c, "Beranda")
	cars, err := h.Cars.Recommended(c.Request().Context())
	if err != nil {
		c.Logger().Warnf("home: recommended cars: %v", err)
		p.Error = api.Message(err, "Rekomendasi mobil belum dapat dimuat.")
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		cars = nil
	}
	p.Data = view.HomeData{Cars: cars, Testimonials: content.Testimonials()}
	return c.Render(http.StatusOK, "home", p)
}

func (h *PublicHandler) Terms(c echo.Context) error {
	p := newPage(c, "Syarat & Ketentuan")
	p.Data = content.Terms()
	return c.Render(http.StatusOK, "terms", p)
}

func (h *PublicHandler) Blog(c echo.Context) error {
	p := newPage(c, "Blog")
	p.Data = content.Posts()
	return c.Render(http.StatusOK, "blog", p)
}

func (h *PublicHandler) BlogPost(c echo.Context) error {
	post, ok := content.PostBySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Artikel tidak ditemukan.")
	}
	p := newPage(c, post.Title)
	p.Data = post
	return c.Render(http.StatusOK, "blog_post", p)
}

func (h *PublicHandler) Testimonials(c echo.Context) error {
	p := newPage(c, "Testimoni")
	p.Data = content.Testimonials()
	return c.Render(http.StatusOK, "testimonials", p)
}
