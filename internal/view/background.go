package view

import (
	"html/template"

	"github.com/kalambet/folio/internal/download"
	"github.com/kalambet/folio/internal/resume"
)

type DegreeEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Entry is one rendered content item. Link is empty when the item has none,
// and the template then renders the title as plain text.
type Entry struct {
	Title       string        `json:"title"`
	Link        string        `json:"link,omitempty"`
	Description template.HTML `json:"description"`
	Degrees     []DegreeEntry `json:"degrees,omitempty"`
}

type Section struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Icon    string  `json:"icon"`
	Entries []Entry `json:"entries"`
}

type BackgroundView struct {
	Sections []Section     `json:"sections"`
	Download download.Info `json:"download"`
}

// NewBackgroundView renders the education, work, research and language
// sections in that order.
func NewBackgroundView(r *resume.Resume, md *Markdown, dl download.Info) BackgroundView {
	education := Section{Key: "education", Title: "Education", Icon: "graduate"}
	for _, it := range r.Education {
		e := entry(it.ContentItem, md)
		for _, d := range it.Degrees {
			e.Degrees = append(e.Degrees, DegreeEntry{Title: d.Title, Description: d.Description})
		}
		education.Entries = append(education.Entries, e)
	}

	return BackgroundView{
		Sections: []Section{
			education,
			section("work", "Work Experience", "briefcase", r.Work, md),
			section("research", "Research", "flask", r.Research, md),
			section("languages", "Languages", "globe", r.Languages, md),
		},
		Download: dl,
	}
}

func section(key, title, icon string, items []resume.ContentItem, md *Markdown) Section {
	s := Section{Key: key, Title: title, Icon: icon}
	for _, it := range items {
		s.Entries = append(s.Entries, entry(it, md))
	}
	return s
}

func entry(it resume.ContentItem, md *Markdown) Entry {
	return Entry{
		Title:       it.Title,
		Link:        it.Link,
		Description: md.HTML(it.Description),
	}
}
