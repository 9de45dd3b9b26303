package download

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"
)

func TestInspect(t *testing.T) {
	info, err := Inspect("testdata/two-pages.pdf", "/static")
	if err != nil {
		t.Fatalf("Inspect() error: %v", err)
	}
	if info.Pages != 2 {
		t.Errorf("Pages = %d, want 2", info.Pages)
	}
	if info.Title != "Test Resume" {
		t.Errorf("Title = %q, want %q", info.Title, "Test Resume")
	}
	if info.URL != "/static/two-pages.pdf" {
		t.Errorf("URL = %q, want /static/two-pages.pdf", info.URL)
	}
	if info.Size == 0 {
		t.Error("Size = 0")
	}
}

func TestInspect_NotPDF(t *testing.T) {
	_, err := Inspect("testdata/not-a-pdf.pdf", "/static")
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("Inspect() err = %v, want ErrNotPDF", err)
	}
}

func TestInspect_Corrupt(t *testing.T) {
	info, err := Inspect("testdata/corrupt.pdf", "/static")
	if err == nil {
		t.Fatalf("Inspect() = %+v, want error for malformed object", info)
	}
	if errors.Is(err, ErrNotPDF) {
		t.Errorf("err = %v, header is valid so it should not be ErrNotPDF", err)
	}
	if info != (Info{}) {
		t.Errorf("info = %+v, want zero value on error", info)
	}
}

func TestInspectBytes_Truncated(t *testing.T) {
	data, err := os.ReadFile("testdata/two-pages.pdf")
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{len(data) / 2, len(data) - 25} {
		if _, err := InspectBytes("cut.pdf", "/static", data[:n]); err == nil {
			t.Errorf("InspectBytes(first %d bytes) = nil error", n)
		}
	}
}

func TestInspect_Missing(t *testing.T) {
	if _, err := Inspect("testdata/missing.pdf", "/static"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInspectFS(t *testing.T) {
	data, err := os.ReadFile("testdata/two-pages.pdf")
	if err != nil {
		t.Fatal(err)
	}
	fsys := fstest.MapFS{"static/cv.pdf": {Data: data}}

	info, err := InspectFS(fsys, "static/cv.pdf", "/static")
	if err != nil {
		t.Fatalf("InspectFS() error: %v", err)
	}
	if info.Name != "cv.pdf" || info.URL != "/static/cv.pdf" {
		t.Errorf("info = %+v", info)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		pages int
		want  string
	}{
		{0, "Download Full Resume"},
		{1, "Download Full Resume (1 page)"},
		{3, "Download Full Resume (3 pages)"},
	}
	for _, tt := range tests {
		if got := (Info{Pages: tt.pages}).Label(); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.pages, got, tt.want)
		}
	}
}
