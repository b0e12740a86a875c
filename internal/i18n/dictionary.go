// Package i18n provides the site's message dictionary and request language
// resolution.
package i18n

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "genesis-language"
)

// Lang is a supported site language.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Default is used when no preference or browser language applies.
const Default = English

var catalogs = map[Lang]map[string]string{
	English: english,
	Arabic:  arabic,
}

// Supported lists the site languages in switcher order.
func Supported() []Lang {
	return []Lang{English, Arabic}
}

// ParseLang returns the supported language named by value.
func ParseLang(value string) (Lang, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	lang := Lang(base.String())
	if _, ok := catalogs[lang]; !ok {
		return "", false
	}
	return lang, true
}

// Dictionary looks up display strings for one language.
type Dictionary struct {
	lang     Lang
	messages map[string]string
}

// New returns the dictionary of lang, or of Default when lang is unsupported.
func New(lang Lang) *Dictionary {
	messages, ok := catalogs[lang]
	if !ok {
		lang = Default
		messages = catalogs[Default]
	}
	return &Dictionary{lang: lang, messages: messages}
}

func (d *Dictionary) Lang() Lang {
	return d.lang
}

// Lookup returns the string for key. Missing keys fall back to English and
// then to the key itself.
func (d *Dictionary) Lookup(key string) string {
	if v, ok := d.messages[key]; ok && v != "" {
		return v
	}
	if v, ok := catalogs[Default][key]; ok && v != "" {
		return v
	}
	return key
}

// Dir is the text direction of the language, "rtl" or "ltr".
func (d *Dictionary) Dir() string {
	if d.lang == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Resolve picks the language for a request. An explicit ?lang= wins and
// should be persisted, then the stored cookie, then any Arabic entry in
// Accept-Language, then Default.
func Resolve(r *http.Request) (Lang, bool) {
	if r == nil {
		return Default, false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if lang, ok := ParseLang(value); ok {
			return lang, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if lang, ok := ParseLang(cookie.Value); ok {
			return lang, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			for _, tag := range tags {
				if base, _ := tag.Base(); base.String() == string(Arabic) {
					return Arabic, false
				}
			}
		}
	}

	return Default, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, lang Lang) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

type contextKey struct{}

// WithDictionary returns a copy of ctx carrying d.
func WithDictionary(ctx context.Context, d *Dictionary) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext returns the dictionary stored in ctx, or the default one.
func FromContext(ctx context.Context) *Dictionary {
	if d, ok := ctx.Value(contextKey{}).(*Dictionary); ok && d != nil {
		return d
	}
	return New(Default)
}
