package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kalambet/folio/internal/resume"
)

const yamlDoc = `
skills:
  - title: Go
    category: Lang
    proficiency: 5
  - title: SQL
    category: DB
    proficiency: 3
education:
  - title: State University
    description: Thesis on *consensus*
    degrees:
      - title: B.S.
        description: Computer Science
work:
  - title: Example Corp
    link: https://example.com
    description: Backend engineer
research: []
languages:
  - title: English
    description: Native
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"resume.json", FormatJSON, false},
		{"resume.YAML", FormatYAML, false},
		{"resume.yml", FormatYAML, false},
		{"resume.db", FormatSQLite, false},
		{"resume.sqlite", FormatSQLite, false},
		{"resume.toml", "", true},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if tt.err {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("FormatOf(%q) err = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
}

func TestSample(t *testing.T) {
	r, err := Sample()
	if err != nil {
		t.Fatalf("Sample() error: %v", err)
	}
	if len(r.Skills) == 0 || len(r.Education) == 0 || len(r.Work) == 0 {
		t.Fatalf("sample resume is missing sections: %+v", r)
	}
}

func TestLoad_EmptyPathUsesSample(t *testing.T) {
	r, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	s, _ := Sample()
	if !reflect.DeepEqual(r, s) {
		t.Error("Load(\"\") differs from Sample()")
	}
}

func TestLoad_YAML(t *testing.T) {
	r, err := Load(writeFile(t, "resume.yaml", yamlDoc))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(r.Skills) != 2 || r.Skills[0].Title != "Go" {
		t.Errorf("skills = %+v", r.Skills)
	}
	if got := r.Education[0].Degrees[0].Title; got != "B.S." {
		t.Errorf("degree title = %q, want B.S.", got)
	}
	if r.Work[0].Link != "https://example.com" {
		t.Errorf("work link = %q", r.Work[0].Link)
	}
}

func TestLoad_JSONRejectsOutOfRangeProficiency(t *testing.T) {
	doc := `{"skills":[{"title":"Go","category":"Lang","proficiency":7}]}`
	_, err := Load(writeFile(t, "resume.json", doc))
	if !errors.Is(err, resume.ErrInvalid) {
		t.Fatalf("Load() err = %v, want ErrInvalid", err)
	}
}

func TestLoad_JSONRejectsUnknownFields(t *testing.T) {
	doc := `{"skills":[{"title":"Go","category":"Lang","proficiency":3,"level":"expert"}]}`
	if _, err := Load(writeFile(t, "resume.json", doc)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "opening resume data") {
		t.Fatalf("Load() err = %v", err)
	}
}

func TestLoad_SQLiteMatchesJSON(t *testing.T) {
	want, err := Sample()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "resume.db")
	store, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := store.ImportResume(want); err != nil {
		t.Fatalf("ImportResume() error: %v", err)
	}
	store.Close()

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load(sqlite) error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sqlite resume differs:\n got  %+v\n want %+v", got, want)
	}
}
