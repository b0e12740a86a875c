package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/genassess/genesis-assessment-hub/internal/i18n"
	"github.com/genassess/genesis-assessment-hub/internal/models"
	"github.com/genassess/genesis-assessment-hub/internal/service"
	"github.com/genassess/genesis-assessment-hub/internal/site"
)

type contentSource interface {
	Services(ctx context.Context) ([]models.ServiceOffering, error)
	About(ctx context.Context) (*service.AboutContent, error)
	FAQ(ctx context.Context) ([]models.FAQEntry, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	Partners(ctx context.Context) (*service.PartnersContent, error)
}

// SiteHandler serves the informational pages.
type SiteHandler struct {
	content contentSource
	baseURL string
	logger  *slog.Logger
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(content contentSource, baseURL string, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		content: content,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (h *SiteHandler) page(w http.ResponseWriter, r *http.Request, status int, meta site.PageMeta, body templ.Component) {
	WriteHTML(w, r, status, site.Layout(h.baseURL, site.Page{
		Meta: meta,
		Path: r.URL.Path,
		Body: body,
	}), h.logger)
}

func (h *SiteHandler) contentError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("failed to load page content", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// Home handles GET /
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	services, err := h.content.Services(r.Context())
	if err != nil {
		h.contentError(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, site.HomeMeta, site.Home(services))
}

func (h *SiteHandler) About(w http.ResponseWriter, r *http.Request) {
	about, err := h.content.About(r.Context())
	if err != nil {
		h.contentError(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, site.AboutMeta, site.About(about.Team))
}

func (h *SiteHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.content.Services(r.Context())
	if err != nil {
		h.contentError(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, site.ServicesMeta, site.Services(services))
}

func (h *SiteHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.Testimonials(r.Context())
	if err != nil {
		h.contentError(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, site.TestimonialsMeta, site.Testimonials(items))
}

func (h *SiteHandler) Partners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.content.Partners(r.Context())
	if err != nil {
		h.contentError(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, site.PartnersMeta, site.Partners(partners.Schools, partners.Categories))
}

func (h *SiteHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	entries, err := h.content.FAQ(r.Context())
	if err != nil {
		h.contentError(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, site.FAQMeta, site.FAQ(entries))
}

// NotFound renders the 404 page for unknown routes.
func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("page not found", "path", r.URL.Path)
	h.page(w, r, http.StatusNotFound, site.NotFoundMeta, site.NotFound())
}

// SetLanguage handles GET /language?lang=xx&next=/path. It stores the
// preference and sends the visitor back to a local path.
func (h *SiteHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	if lang, ok := i18n.ParseLang(r.URL.Query().Get(i18n.LangParam)); ok {
		i18n.SetLanguageCookie(w, lang)
	}
	http.Redirect(w, r, localPath(r.URL.Query().Get("next")), http.StatusSeeOther)
}

// localPath guards against redirects to other hosts.
func localPath(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
