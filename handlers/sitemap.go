package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"sportello/config"
	"sportello/i18n"

	"github.com/gin-gonic/gin"
)

// contentRoutes lists the localized content pages published in the sitemap.
// Paths are locale-relative; each is emitted once per supported locale.
var contentRoutes = []string{
	"",
	"/about",
	"/services",
	"/guides",
	"/guides/nin",
	"/guides/settled-status",
	"/guides/spid",
	"/guides/gp-registration",
	"/guides/renting",
	"/contact",
	"/privacy",
	"/terms",
}

type sitemapLink struct {
	Rel  string `xml:"rel,attr"`
	Lang string `xml:"hreflang,attr"`
	Href string `xml:"href,attr"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler emits the locale-expanded sitemap with hreflang alternates.
func SitemapHandler(c *gin.Context) {
	base := strings.TrimSuffix(config.AppConfig.SiteBaseURL, "/")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, route := range contentRoutes {
		alternates := make([]sitemapLink, 0, len(i18n.Supported)+1)
		for _, loc := range i18n.Supported {
			alternates = append(alternates, sitemapLink{
				Rel:  "alternate",
				Lang: loc,
				Href: base + "/" + loc + route,
			})
		}
		alternates = append(alternates, sitemapLink{
			Rel:  "alternate",
			Lang: "x-default",
			Href: base + "/" + i18n.Supported[0] + route,
		})
		for _, loc := range i18n.Supported {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        base + "/" + loc + route,
				Alternates: alternates,
			})
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

// RobotsHandler points crawlers at the sitemap.
func RobotsHandler(c *gin.Context) {
	base := strings.TrimSuffix(config.AppConfig.SiteBaseURL, "/")
	body := "User-agent: *\nAllow: /\n\nSitemap: " + base + "/sitemap.xml\n"
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
