package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/genassess/genesis-assessment-hub/internal/handlers"
	"github.com/genassess/genesis-assessment-hub/internal/middleware"
)

// relayCORS is the cross-origin contract of the relay endpoints: any origin,
// and the headers browser clients send with their anon key.
var relayCORS = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	MaxAge:         300,
}

type routerDeps struct {
	log         *slog.Logger
	health      *handlers.HealthHandler
	relay       *handlers.RelayHandler
	site        *handlers.SiteHandler
	forms       *handlers.FormHandler
	relayKeys   []string
	pageTimeout time.Duration
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(d.pageTimeout))

	r.Get("/health", d.health.ServeHTTP)

	// Order mail relay
	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowAnyOrigin(relayCORS.AllowedHeaders))
		r.Use(cors.Handler(relayCORS))
		r.Use(middleware.RelayAuth(d.relayKeys))

		for _, path := range []string{"/functions/v1/send-order-email", "/api/order"} {
			r.Post(path, d.relay.SendOrderEmail)
			r.Options(path, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		}
	})

	// Site pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.Language)

		r.Get("/", d.site.Home)
		r.Get("/about", d.site.About)
		r.Get("/services", d.site.Services)
		r.Get("/testimonials", d.site.Testimonials)
		r.Get("/partners", d.site.Partners)
		r.Get("/faq", d.site.FAQ)
		r.Get("/language", d.site.SetLanguage)

		r.Get("/contact", d.forms.ContactForm)
		r.Post("/contact", d.forms.SubmitContact)
		r.Get("/order", d.forms.OrderForm)
		r.Post("/order", d.forms.SubmitOrder)
		r.Get("/order/new", d.forms.NewOrder)

		r.NotFound(d.site.NotFound)
	})

	return r
}
