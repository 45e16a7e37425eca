package i18n

import (
	"strings"

	"sportello/i18n/locales"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Supported locale codes. The first entry is the site default.
var Supported = []string{"en", "it"}

var bundle *i18n.Bundle

// Init initializes the translation bundle.
func Init() error {
	bundle = i18n.NewBundle(language.English)
	for _, lang := range Supported {
		messages := getMessages(lang)
		tag := language.MustParse(lang)
		for id, msg := range messages {
			if err := bundle.AddMessages(tag, &i18n.Message{ID: id, Other: msg}); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsSupported reports whether code is one of the supported locale codes.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if l == code {
			return true
		}
	}
	return false
}

// MatchHeader returns the first supported locale found in an Accept-Language
// header, matching on the primary language subtag (so "it-IT" matches "it").
// Malformed headers and headers with no supported language report ok=false.
func MatchHeader(acceptLang string) (code string, ok bool) {
	if acceptLang == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil {
		return "", false
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if IsSupported(base.String()) {
			return base.String(), true
		}
	}
	return "", false
}

// GetLocalizer gets a localizer for a locale code.
func GetLocalizer(lang string) *i18n.Localizer {
	if !IsSupported(lang) {
		lang = Supported[0]
	}
	return i18n.NewLocalizer(bundle, lang)
}

// T translates a message.
func T(localizer *i18n.Localizer, msgID string, data ...map[string]any) string {
	config := &i18n.LocalizeConfig{
		MessageID: msgID,
	}
	if len(data) > 0 {
		config.TemplateData = data[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		// If translation fails, return message ID
		return msgID
	}
	return msg
}

func getMessages(lang string) map[string]string {
	switch strings.ToLower(lang) {
	case "it":
		return locales.MessagesIt
	default:
		return locales.MessagesEn
	}
}
