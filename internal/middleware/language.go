package middleware

import (
	"net/http"

	"github.com/genassess/genesis-assessment-hub/internal/i18n"
)

// Language resolves the visitor's language and stores its dictionary in the
// request context. An explicit ?lang= choice is remembered in a cookie.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang, persist := i18n.Resolve(r)
		if persist {
			i18n.SetLanguageCookie(w, lang)
		}
		ctx := i18n.WithDictionary(r.Context(), i18n.New(lang))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
