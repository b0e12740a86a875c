package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDictionary_Lookup(t *testing.T) {
	en := New(English)
	ar := New(Arabic)

	tests := []struct {
		name string
		dict *Dictionary
		key  string
		want string
	}{
		{"english", en, "nav.order", "Order Exams"},
		{"arabic", ar, "nav.order", "طلب الامتحانات"},
		{"missing key returns key", en, "no.such.key", "no.such.key"},
		{"missing key in arabic returns key", ar, "no.such.key", "no.such.key"},
		{"order error", en, "order.error.submit", "Failed to submit order. Please try again or contact us directly."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dict.Lookup(tt.key); got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestDictionary_LookupFallsBackToEnglish(t *testing.T) {
	english["test.only.english"] = "English only"
	defer delete(english, "test.only.english")

	if got := New(Arabic).Lookup("test.only.english"); got != "English only" {
		t.Errorf("Lookup() = %q, want English fallback", got)
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	for key := range english {
		if _, ok := arabic[key]; !ok {
			t.Errorf("arabic catalog is missing %q", key)
		}
	}
	for key := range arabic {
		if _, ok := english[key]; !ok {
			t.Errorf("english catalog is missing %q", key)
		}
	}
}

func TestDictionary_Dir(t *testing.T) {
	if New(English).Dir() != "ltr" {
		t.Error("english should be ltr")
	}
	if New(Arabic).Dir() != "rtl" {
		t.Error("arabic should be rtl")
	}
	if New(Lang("fr")).Lang() != Default {
		t.Error("unsupported language should fall back to the default")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		cookie      string
		accept      string
		want        Lang
		wantPersist bool
	}{
		{name: "default", want: English},
		{name: "query param", query: "ar", want: Arabic, wantPersist: true},
		{name: "unknown query param ignored", query: "fr", want: English},
		{name: "cookie", cookie: "ar", want: Arabic},
		{name: "query beats cookie", query: "en", cookie: "ar", want: English, wantPersist: true},
		{name: "cookie beats browser", cookie: "en", accept: "ar-SA", want: English},
		{name: "arabic browser", accept: "ar-EG,ar;q=0.9", want: Arabic},
		{name: "arabic anywhere in browser list", accept: "en-US,en;q=0.9,ar;q=0.5", want: Arabic},
		{name: "french browser", accept: "fr-FR", want: English},
		{name: "malformed accept", accept: ";;;", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?lang=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}

			got, persist := Resolve(req)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if persist != tt.wantPersist {
				t.Errorf("persist = %v, want %v", persist, tt.wantPersist)
			}
		})
	}
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, Arabic)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "ar" {
		t.Errorf("cookie = %s=%s", cookies[0].Name, cookies[0].Value)
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()).Lang() != Default {
		t.Error("empty context should yield the default dictionary")
	}

	ctx := WithDictionary(context.Background(), New(Arabic))
	if FromContext(ctx).Lang() != Arabic {
		t.Error("expected the stored dictionary")
	}
}
