package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/content"
)

// Robots keeps crawlers out of the admin area and the login page.
func (h *PublicHandler) Robots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /login/\n")
	b.WriteString("Disallow: /login\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", h.SiteURL)
	return c.String(http.StatusOK, b.String())
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap lists the public pages and every blog post.
func (h *PublicHandler) Sitemap(c echo.Context) error {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, u := range []sitemapURL{
		{Loc: "/", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: "/blog", ChangeFreq: "weekly", Priority: "0.8"},
		{Loc: "/testimonials", ChangeFreq: "monthly", Priority: "0.5"},
		{Loc: "/terms", ChangeFreq: "yearly", Priority: "0.3"},
	} {
		u.Loc = h.SiteURL + u.Loc
		set.URLs = append(set.URLs, u)
	}
	for _, p := range content.Posts() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.SiteURL + "/blog/" + p.Slug,
			LastMod:    p.Published.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}
	return c.XML(http.StatusOK, set)
}
