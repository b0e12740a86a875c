package site

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/genassess/genesis-assessment-hub/internal/i18n"
	"github.com/genassess/genesis-assessment-hub/internal/markup"
	"github.com/genassess/genesis-assessment-hub/internal/models"
)

// body adapts a writer-driven page section to templ.Component.
func body(fn func(hw *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{Writer: markup.NewWriter(w), dict: i18n.FromContext(ctx)}
		fn(hw)
		return hw.Err()
	})
}

func writeSecurityNotice(hw *htmlWriter) {
	hw.Raw(`<aside class="security-notice">` + "\n")
	hw.element("h2", "", "security.title")
	hw.element("p", "", "security.message")
	hw.link("/contact", "", "security.cta")
	hw.Raw("\n</aside>\n")
}

func writeServiceCards(hw *htmlWriter, services []models.ServiceOffering) {
	hw.Raw(`<div class="cards">` + "\n")
	for _, s := range services {
		hw.Raw(`<article class="card"`)
		hw.Attr("id", "service-"+s.ID)
		hw.Raw(">\n")
		hw.element("h3", "", s.TitleKey)
		hw.element("p", "", s.TextKey)
		hw.Raw("</article>\n")
	}
	hw.Raw("</div>\n")
}

// Home renders the landing page.
func Home(services []models.ServiceOffering) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.Raw(`<section class="hero">` + "\n")
		hw.element("h1", "", "hero.title")
		hw.element("p", "subtitle", "hero.subtitle")
		hw.link("/contact", "button primary", "hero.cta")
		hw.Raw(" ")
		hw.link("/about", "button", "hero.learn")
		hw.Raw("\n</section>\n")

		hw.Raw(`<section class="services">` + "\n")
		hw.element("h2", "", "services.title")
		hw.element("p", "subtitle", "services.subtitle")
		writeServiceCards(hw, services)
		hw.Raw("</section>\n")

		writeSecurityNotice(hw)
	})
}

var valueKeys = []string{"about.values.integrity", "about.values.quality", "about.values.trust"}

// About renders mission, values and team.
func About(team []models.TeamMember) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.sectionHeader("about.title", "about.subtitle")

		hw.Raw(`<section class="mission">` + "\n")
		hw.element("h2", "", "about.mission.title")
		hw.element("p", "", "about.mission.text")
		hw.Raw("</section>\n")

		hw.Raw(`<section class="values">` + "\n")
		hw.element("h2", "", "about.values.title")
		for _, key := range valueKeys {
			hw.Raw(`<div class="value">` + "\n")
			hw.element("h3", "", key)
			hw.element("p", "", key+".text")
			hw.Raw("</div>\n")
		}
		hw.Raw("</section>\n")

		hw.Raw(`<section class="team">` + "\n")
		hw.element("h2", "", "about.team.title")
		hw.element("p", "subtitle", "about.team.subtitle")
		for _, m := range team {
			hw.Raw(`<article class="member">` + "\n")
			hw.element("h3", "", m.NameKey)
			hw.element("p", "role", m.RoleKey)
			hw.element("p", "", m.BioKey)
			hw.Raw("</article>\n")
		}
		hw.Raw("</section>\n")
	})
}

// Services renders the full service list and the security notice.
func Services(services []models.ServiceOffering) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.sectionHeader("services.title", "services.subtitle")
		writeServiceCards(hw, services)
		writeSecurityNotice(hw)
	})
}

func Testimonials(items []models.Testimonial) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.sectionHeader("testimonials.title", "testimonials.subtitle")
		hw.Raw(`<div class="testimonials">` + "\n")
		for _, item := range items {
			hw.Raw("<figure>\n<blockquote>")
			hw.Text(item.Quote)
			hw.Raw("</blockquote>\n<figcaption><strong>")
			hw.Text(item.Author)
			hw.Raw("</strong><br>")
			hw.Text(item.Position)
			hw.Raw(", ")
			hw.Text(item.Location)
			hw.Raw("</figcaption>\n</figure>\n")
		}
		hw.Raw("</div>\n")
	})
}

func Partners(schools []models.PartnerSchool, categories []models.PartnerCategory) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.sectionHeader("partners.title", "partners.subtitle")

		hw.Raw(`<section class="schools">` + "\n<ul>\n")
		for _, s := range schools {
			hw.Raw("<li><strong>")
			hw.Text(s.Name)
			hw.Raw("</strong> ")
			hw.Text(s.Location)
			hw.Raw(` <span class="students">`)
			hw.Text(s.Students)
			hw.Raw("</span></li>\n")
		}
		hw.Raw("</ul>\n</section>\n")

		for _, c := range categories {
			hw.Raw(`<section class="partner-category">` + "\n<h2>")
			hw.Text(c.Title)
			hw.Raw("</h2>\n<ul>\n")
			for _, m := range c.Members {
				hw.Raw("<li>")
				hw.Text(m)
				hw.Raw("</li>\n")
			}
			hw.Raw("</ul>\n</section>\n")
		}
	})
}

func FAQ(entries []models.FAQEntry) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.sectionHeader("faq.title", "")
		hw.Raw(`<div class="faq">` + "\n")
		for _, e := range entries {
			hw.Raw("<details")
			hw.Attr("id", e.ID)
			hw.Raw(">\n")
			hw.element("summary", "", e.QuestionKey)
			hw.element("p", "", e.AnswerKey)
			hw.Raw("</details>\n")
		}
		hw.Raw("</div>\n")
	})
}

func NotFound() templ.Component {
	return body(func(hw *htmlWriter) {
		hw.Raw(`<section class="not-found">` + "\n<h1>404</h1>\n")
		hw.element("h2", "", "notfound.title")
		hw.element("p", "", "notfound.message")
		hw.link("/", "button", "notfound.home")
		hw.Raw("\n</section>\n")
	})
}
