package site

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/genassess/genesis-assessment-hub/internal/i18n"
	"github.com/genassess/genesis-assessment-hub/internal/markup"
	"github.com/genassess/genesis-assessment-hub/internal/orderform"
)

// Page is one full document: head metadata, toasts and body.
type Page struct {
	Meta PageMeta
	// Path is the request path, used by the language switcher to come back.
	Path    string
	Notices []orderform.Notice
	// RefreshAfter, when set, reloads RefreshURL after the delay.
	RefreshAfter time.Duration
	RefreshURL   string
	Body         templ.Component
}

type navItem struct {
	href string
	key  string
}

var navItems = []navItem{
	{"/", "nav.home"},
	{"/about", "nav.about"},
	{"/services", "nav.services"},
	{"/testimonials", "nav.testimonials"},
	{"/partners", "nav.partners"},
	{"/faq", "nav.faq"},
	{"/contact", "nav.contact"},
	{"/order", "nav.order"},
}

// Layout wraps a page body in the shared document shell. The dictionary is
// taken from the render context.
func Layout(baseURL string, p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		dict := i18n.FromContext(ctx)
		hw := &htmlWriter{Writer: markup.NewWriter(w), dict: dict}

		hw.Raw("<!DOCTYPE html>\n<html")
		hw.Attr("lang", string(dict.Lang()))
		hw.Attr("dir", dict.Dir())
		hw.Raw(">\n<head>\n<meta charset=\"utf-8\">\n")
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
		hw.Raw("<title>")
		hw.Text(p.Meta.FullTitle())
		hw.Raw("</title>\n<meta name=\"description\"")
		hw.Attr("content", p.Meta.Description)
		hw.Raw(">\n")
		if canonical := p.Meta.Canonical(baseURL); canonical != "" {
			hw.Raw(`<link rel="canonical"`)
			hw.Attr("href", canonical)
			hw.Raw(">\n")
		}
		if p.Meta.NoIndex {
			hw.Raw(`<meta name="robots" content="noindex, nofollow">` + "\n")
		}
		if p.RefreshAfter > 0 {
			hw.Raw(`<meta http-equiv="refresh"`)
			hw.Attr("content", strconv.Itoa(int(p.RefreshAfter.Seconds()))+";url="+p.RefreshURL)
			hw.Raw(">\n")
		}
		hw.Raw("</head>\n<body>\n")

		writeNav(hw, p.Path)
		writeNotices(hw, p.Notices)

		hw.Raw("<main>\n")
		if hw.Err() != nil {
			return hw.Err()
		}
		if p.Body != nil {
			if err := p.Body.Render(ctx, w); err != nil {
				return err
			}
		}
		hw.Raw("</main>\n")

		writeFooter(hw)
		hw.Raw("</body>\n</html>\n")
		return hw.Err()
	})
}

func writeNav(hw *htmlWriter, path string) {
	hw.Raw(`<nav class="navbar">` + "\n<ul>\n")
	for _, item := range navItems {
		hw.Raw("<li>")
		class := ""
		if item.href == path {
			class = "active"
		}
		hw.link(item.href, class, item.key)
		hw.Raw("</li>\n")
	}
	hw.Raw("</ul>\n")

	other := i18n.Arabic
	if hw.dict.Lang() == i18n.Arabic {
		other = i18n.English
	}
	if path == "" {
		path = "/"
	}
	q := url.Values{}
	q.Set(i18n.LangParam, string(other))
	q.Set("next", path)
	hw.link("/language?"+q.Encode(), "language-toggle", "language.toggle")
	hw.Raw("\n</nav>\n")
}

func writeNotices(hw *htmlWriter, notices []orderform.Notice) {
	if len(notices) == 0 {
		return
	}
	hw.Raw(`<div class="toasts" role="status">` + "\n")
	for _, n := range notices {
		class := "toast"
		if n.Destructive {
			class = "toast destructive"
		}
		hw.Raw("<div")
		hw.Attr("class", class)
		hw.Raw(">")
		if n.Destructive {
			hw.element("strong", "", "order.error.title")
		}
		hw.element("p", "", n.Key)
		hw.Raw("</div>\n")
	}
	hw.Raw("</div>\n")
}

func writeFooter(hw *htmlWriter) {
	hw.Raw(`<footer class="footer">` + "\n")
	hw.element("p", "", "footer.about")
	hw.element("h2", "", "footer.contact.title")
	hw.element("p", "", "footer.contact.email")
	hw.element("p", "", "footer.contact.phone")
	hw.Raw(`<p class="rights">`)
	hw.Text(replaceYear(hw.dict.Lookup("footer.rights"), strconv.Itoa(time.Now().Year())))
	hw.Raw("</p>\n</footer>\n")
}
