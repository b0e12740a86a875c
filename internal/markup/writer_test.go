package markup

import (
	"errors"
	"strings"
	"testing"
)

func TestWriter_EscapesTextAndAttributes(t *testing.T) {
	var sb strings.Builder
	mw := NewWriter(&sb)

	mw.Raw("<p")
	mw.Attr("title", `"quoted" & <tag>`)
	mw.Raw(">")
	mw.Text("<script>alert(1)</script>")
	mw.Raw("</p>")

	got := sb.String()
	if strings.Contains(got, "<script>") {
		t.Errorf("text was not escaped: %s", got)
	}
	if !strings.Contains(got, `title="&#34;quoted&#34; &amp; &lt;tag&gt;"`) {
		t.Errorf("attribute was not escaped: %s", got)
	}
	if mw.Err() != nil {
		t.Errorf("Err() = %v, want nil", mw.Err())
	}
}

type failingWriter struct {
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("connection reset")
}

func TestWriter_StopsAfterFirstError(t *testing.T) {
	fw := &failingWriter{}
	mw := NewWriter(fw)

	mw.Raw("a", "b")
	mw.Text("c")
	mw.Attr("d", "e")

	if mw.Err() == nil {
		t.Fatal("expected the write error to be kept")
	}
	if fw.writes != 1 {
		t.Errorf("underlying writer called %d times, want 1", fw.writes)
	}
}
