package i18n

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

const (
	// CookieName is the cookie carrying the visitor's resolved locale.
	CookieName = "locale"
	// LocalizerKey is the gin.Context key holding the request Localizer.
	LocalizerKey = "localizer"
	// LangKey is the gin.Context key holding the resolved locale code.
	LangKey = "lang"
)

// Middleware resolves the request locale (cookie first, then Accept-Language,
// then the site default) and stores a Localizer in the context for handlers.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := Supported[0]
		if cookie, err := c.Cookie(CookieName); err == nil && IsSupported(cookie) {
			lang = cookie
		} else if matched, ok := MatchHeader(c.GetHeader("Accept-Language")); ok {
			lang = matched
		}

		c.Set(LocalizerKey, GetLocalizer(lang))
		c.Set(LangKey, lang)
		c.Next()
	}
}

// GetLocalizerFromContext gets the Localizer from gin.Context.
func GetLocalizerFromContext(c *gin.Context) *i18n.Localizer {
	if localizer, exists := c.Get(LocalizerKey); exists {
		if l, ok := localizer.(*i18n.Localizer); ok {
			return l
		}
	}
	return GetLocalizer(Supported[0])
}

// GetLangFromContext gets the resolved locale code from gin.Context.
func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get(LangKey); exists {
		if l, ok := lang.(string); ok {
			return l
		}
	}
	return Supported[0]
}

// Message gets an internationalized message for the request locale.
func Message(c *gin.Context, msgID string, templateData ...map[string]any) string {
	localizer := GetLocalizerFromContext(c)
	return T(localizer, msgID, templateData...)
}
