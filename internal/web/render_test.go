package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/kalambet/folio/internal/download"
	"github.com/kalambet/folio/internal/resume"
	"github.com/kalambet/folio/internal/view"
)

func testProjector(t *testing.T) *view.Projector {
	t.Helper()
	r := &resume.Resume{
		Skills: []resume.Skill{
			{Title: "Go", Category: "Lang", Proficiency: 5},
			{Title: "C", Category: "Lang", Proficiency: 5},
			{Title: "SQL", Category: "DB", Proficiency: 3},
		},
		Work: []resume.ContentItem{
			{Title: "Linked Corp", Link: "https://example.com", Description: "Did **things**"},
			{Title: "Plain Corp", Description: "No link"},
		},
	}
	dl, err := download.InspectFS(Static(), ResumePDF, "/static")
	if err != nil {
		t.Fatalf("inspecting bundled pdf: %v", err)
	}
	return view.NewProjector(r, view.NewMarkdown(), dl, "/resume")
}

// collect returns every element matching pred in document order.
func collect(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && pred(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, collect(c, pred)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func renderPage(t *testing.T, s view.State) *html.Node {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Resume(&buf, testProjector(t).Page(s)); err != nil {
		t.Fatalf("Resume() error: %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	return doc
}

func TestRender_SkillsBars(t *testing.T) {
	doc := renderPage(t, view.State{Mode: view.ModeSkills, Category: resume.AllCategories})

	fills := collect(doc, hasClass("fill"))
	if len(fills) != 3 {
		t.Fatalf("rendered %d bars, want 3", len(fills))
	}
	if !hasClass("w-100")(fills[0]) {
		t.Errorf("first bar class = %q, want w-100", attr(fills[0], "class"))
	}
	if !hasClass("w-60")(fills[2]) {
		t.Errorf("last bar class = %q, want w-60", attr(fills[2], "class"))
	}

	filters := collect(doc, hasClass("filter"))
	if len(filters) != 3 {
		t.Fatalf("rendered %d filters, want 3", len(filters))
	}
	if !hasClass("selected")(filters[0]) {
		t.Error("All filter should be selected")
	}
}

func TestRender_UnknownCategoryNoBars(t *testing.T) {
	doc := renderPage(t, view.State{Mode: view.ModeSkills, Category: "Cooking"})
	if fills := collect(doc, hasClass("fill")); len(fills) != 0 {
		t.Errorf("rendered %d bars, want 0", len(fills))
	}
}

func TestRender_Background(t *testing.T) {
	doc := renderPage(t, view.DefaultState())

	titles := collect(doc, hasClass("entry-title"))
	if len(titles) != 2 {
		t.Fatalf("rendered %d entries, want 2", len(titles))
	}
	if titles[0].Data != "a" || attr(titles[0], "href") != "https://example.com" {
		t.Errorf("linked entry = <%s href=%q>", titles[0].Data, attr(titles[0], "href"))
	}
	if titles[1].Data != "span" {
		t.Errorf("unlinked entry rendered as <%s>", titles[1].Data)
	}

	strong := collect(doc, func(n *html.Node) bool { return n.Data == "strong" })
	if len(strong) != 1 {
		t.Errorf("markdown not rendered, found %d <strong>", len(strong))
	}

	dl := collect(doc, hasClass("download"))
	if len(dl) != 1 {
		t.Fatalf("download links = %d, want 1", len(dl))
	}
	if attr(dl[0], "href") != "/static/resume.pdf" {
		t.Errorf("download href = %q", attr(dl[0], "href"))
	}
	hasDownload := false
	for _, a := range dl[0].Attr {
		if a.Key == "download" {
			hasDownload = true
		}
	}
	if !hasDownload {
		t.Error("download link lacks the download attribute")
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"style.css", ResumePDF} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("static %s: %v", name, err)
		}
	}
}
