package site

import (
	"strings"

	"github.com/genassess/genesis-assessment-hub/internal/i18n"
	"github.com/genassess/genesis-assessment-hub/internal/markup"
)

// htmlWriter adds dictionary lookups to markup.Writer.
type htmlWriter struct {
	*markup.Writer
	dict *i18n.Dictionary
}

// t writes the escaped translation of key.
func (hw *htmlWriter) t(key string) {
	hw.Text(hw.dict.Lookup(key))
}

func (hw *htmlWriter) element(tag, class, key string) {
	hw.Raw("<", tag)
	if class != "" {
		hw.Attr("class", class)
	}
	hw.Raw(">")
	hw.t(key)
	hw.Raw("</", tag, ">\n")
}

func (hw *htmlWriter) link(href, class, key string) {
	hw.Raw("<a")
	hw.Attr("href", href)
	if class != "" {
		hw.Attr("class", class)
	}
	hw.Raw(">")
	hw.t(key)
	hw.Raw("</a>")
}

func (hw *htmlWriter) sectionHeader(titleKey, subtitleKey string) {
	hw.Raw(`<header class="section-header">` + "\n")
	hw.element("h1", "", titleKey)
	if subtitleKey != "" {
		hw.element("p", "subtitle", subtitleKey)
	}
	hw.Raw("</header>\n")
}

// replaceYear fills the {year} placeholder used by the footer copyright line.
func replaceYear(s string, year string) string {
	return strings.ReplaceAll(s, "{year}", year)
}
