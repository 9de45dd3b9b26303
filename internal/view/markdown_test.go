package view

import (
	"strings"
	"testing"
)

func TestMarkdownHTML(t *testing.T) {
	md := NewMarkdown()

	got := string(md.HTML("Built the **ingest** pipeline"))
	if !strings.Contains(got, "<strong>ingest</strong>") {
		t.Errorf("HTML() = %q", got)
	}

	if got := md.HTML("   "); got != "" {
		t.Errorf("HTML(blank) = %q, want empty", got)
	}

	raw := string(md.HTML("<script>alert(1)</script>"))
	if strings.Contains(raw, "<script>") {
		t.Errorf("raw HTML passed through: %q", raw)
	}
}

func TestPlainText(t *testing.T) {
	md := NewMarkdown()
	h := md.HTML("Intro *text*\n\n- one\n- two")

	got := PlainText(h)
	want := "Intro text\n- one\n- two"
	if got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}
