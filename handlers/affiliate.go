package handlers

import (
	"net/http"
	"net/url"

	"sportello/config"
	"sportello/utils"

	"github.com/gin-gonic/gin"
)

// affiliateProducts maps the product slugs referenced by the guides to their
// Amazon ASINs. The affiliate tag is appended from configuration.
var affiliateProducts = map[string]string{
	"uk-plug-adapter":            "B07DK3W7YF",
	"life-in-uk-handbook":        "B0C5JDLW82",
	"italian-english-dictionary": "B00EZHZ7W4",
	"document-folder":            "B08B5L7Y9K",
	"sim-card-uk":                "B09V7RX4JQ",
}

// AffiliateRedirectHandler resolves a curated product slug to its Amazon URL
// carrying the configured affiliate tag.
func AffiliateRedirectHandler(c *gin.Context) {
	slug := c.Param("slug")
	asin, ok := affiliateProducts[slug]
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown product", slug)
		return
	}

	target := "https://www.amazon.co.uk/dp/" + asin
	if tag := config.AppConfig.AffiliateTag; tag != "" {
		target += "?tag=" + url.QueryEscape(tag)
	}
	c.Redirect(http.StatusFound, target)
}
