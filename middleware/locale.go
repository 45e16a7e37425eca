package middleware

import (
	"net/http"
	"path"
	"strings"

	"sportello/config"
	"sportello/i18n"

	"github.com/gin-gonic/gin"
)

// localeCookieMaxAge keeps the visitor's choice for roughly six months.
const localeCookieMaxAge = 180 * 24 * 60 * 60

// Paths that are never localized: API and webhook routes, build internals,
// and the non-content pages that would otherwise redirect-loop on errors.
var (
	skipPrefixes = []string{
		"/api/",
		"/webhook/",
		"/_astro/",
		"/assets/",
		"/.well-known/",
	}
	skipExact = []string{
		"/health",
		"/sitemap.xml",
		"/robots.txt",
		"/favicon.ico",
		"/404",
		"/500",
	}
)

// LocaleRedirect ensures content requests are served under a locale-prefixed
// path and remembers the visitor's locale in a cookie.
//
// Resolution order for unprefixed paths: cookie, then Accept-Language primary
// subtag, then the configured default. A locale already present in the path
// always wins over the cookie, so visitors can switch language via the URL.
func LocaleRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path

		if skipLocale(reqPath) {
			c.Next()
			return
		}

		if loc, ok := pathLocale(reqPath); ok {
			// Path wins: sync the cookie to it and continue unchanged.
			if cookie, err := c.Cookie(i18n.CookieName); err != nil || cookie != loc {
				setLocaleCookie(c, loc)
			}
			c.Next()
			return
		}

		loc := defaultLocale()
		if cookie, err := c.Cookie(i18n.CookieName); err == nil && i18n.IsSupported(cookie) {
			loc = cookie
		} else if matched, ok := i18n.MatchHeader(c.GetHeader("Accept-Language")); ok {
			loc = matched
		}

		setLocaleCookie(c, loc)

		target := "/" + loc + reqPath
		if raw := c.Request.URL.RawQuery; raw != "" {
			target += "?" + raw
		}
		// 307 keeps the method and body intact across the redirect.
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}

func skipLocale(reqPath string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(reqPath, p) {
			return true
		}
	}
	for _, p := range skipExact {
		if reqPath == p {
			return true
		}
	}
	// Static assets carry an extension in their last segment.
	return path.Ext(reqPath) != ""
}

// pathLocale reports the leading locale segment of a path, if any.
func pathLocale(reqPath string) (string, bool) {
	trimmed := strings.TrimPrefix(reqPath, "/")
	seg := trimmed
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		seg = trimmed[:idx]
	}
	if i18n.IsSupported(seg) {
		return seg, true
	}
	return "", false
}

func defaultLocale() string {
	if i18n.IsSupported(config.AppConfig.DefaultLocale) {
		return config.AppConfig.DefaultLocale
	}
	return i18n.Supported[0]
}

func setLocaleCookie(c *gin.Context, loc string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i18n.CookieName, loc, localeCookieMaxAge, "/", "", false, false)
}
