// Package markup writes HTML fragments for templ components built in code.
package markup

import (
	"io"

	"github.com/a-h/templ"
)

// Writer keeps the first write error so component bodies stay linear.
// Once a write fails every later call is a no-op.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes parts unescaped.
func (mw *Writer) Raw(parts ...string) {
	for _, s := range parts {
		if mw.err != nil {
			return
		}
		_, mw.err = io.WriteString(mw.w, s)
	}
}

// Text writes s HTML-escaped.
func (mw *Writer) Text(s string) {
	mw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (mw *Writer) Attr(name, value string) {
	mw.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// Err returns the first write error, if any.
func (mw *Writer) Err() error {
	return mw.err
}
