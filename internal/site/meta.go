// Package site renders the public pages as templ components.
package site

import "strings"

// DefaultBaseURL is the public origin used for canonical links.
const DefaultBaseURL = "https://genesisexaminations.com"

const titleSuffix = " | Genesis Examinations"

// PageMeta is the per-page head metadata.
type PageMeta struct {
	Title       string
	Description string
	Path        string
	NoIndex     bool
}

// FullTitle is the document title.
func (m PageMeta) FullTitle() string {
	return m.Title + titleSuffix
}

// Canonical returns the absolute canonical URL of the page, or "" when the
// page has no path.
func (m PageMeta) Canonical(baseURL string) string {
	if m.Path == "" {
		return ""
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + m.Path
}

var (
	HomeMeta = PageMeta{
		Title:       "Home",
		Description: "Genesis Examinations - Trusted educational assessment solutions for South Sudan. Empowering institutions with secure, professional examination services.",
		Path:        "/",
	}
	AboutMeta = PageMeta{
		Title:       "About Us",
		Description: "Learn about Genesis Examinations, our mission, values, and dedicated team serving South Sudan's educational institutions.",
		Path:        "/about",
	}
	ServicesMeta = PageMeta{
		Title:       "Our Services",
		Description: "Comprehensive examination services including exam development, administration, security, and support for South Sudanese schools.",
		Path:        "/services",
	}
	TestimonialsMeta = PageMeta{
		Title:       "Testimonials",
		Description: "Read what school administrators and educators say about Genesis Examinations services across South Sudan.",
		Path:        "/testimonials",
	}
	PartnersMeta = PageMeta{
		Title:       "Our Partners",
		Description: "Explore our partnerships with educational institutions, government bodies, and international organizations across South Sudan.",
		Path:        "/partners",
	}
	FAQMeta = PageMeta{
		Title:       "Frequently Asked Questions",
		Description: "Find answers to common questions about Genesis Examinations services for South Sudanese educational institutions.",
		Path:        "/faq",
	}
	ContactMeta = PageMeta{
		Title:       "Contact Us",
		Description: "Get in touch with Genesis Examinations for examination services inquiries. Located in Juba, South Sudan.",
		Path:        "/contact",
	}
	OrderMeta = PageMeta{
		Title:       "Order Exams",
		Description: "Order examination materials for your South Sudanese educational institution. Fast, secure, and professional service.",
		Path:        "/order",
	}
	NotFoundMeta = PageMeta{
		Title:       "Page Not Found",
		Description: "The page you are looking for does not exist.",
		NoIndex:     true,
	}
)
