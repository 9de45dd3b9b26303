package view

import (
	"fmt"
	"strings"

	"github.com/kalambet/folio/internal/resume"
)

// Palette is the fixed set of category colours, assigned by position.
var Palette = []string{"emerald", "orange", "blue", "yellow", "purple", "red"}

// levelWidths maps each proficiency level to a bar width in percent.
var levelWidths = [resume.MaxProficiency + 1]int{0, 20, 40, 60, 80, 100}

// Bar is one rendered skill.
type Bar struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Width       int    `json:"width"`
	Color       string `json:"color"`
	Label       string `json:"label"`
}

// CategoryButton is one entry of the category filter.
type CategoryButton struct {
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Selected bool   `json:"selected"`
	URL      string `json:"url"`
}

type SkillsView struct {
	Selected   string           `json:"selected"`
	Categories []CategoryButton `json:"categories"`
	Bars       []Bar            `json:"bars"`
}

// Level clamps p to the proficiency scale.
func Level(p int) int {
	return min(max(p, 0), resume.MaxProficiency)
}

// Width is the bar width in percent for proficiency p.
func Width(p int) int {
	return levelWidths[Level(p)]
}

// ColorMap assigns palette colours to the categories in order. The first
// entry, AllCategories, gets no colour; the palette repeats when there are
// more categories than colours.
func ColorMap(categories []string) map[string]string {
	m := make(map[string]string, len(categories))
	n := 0
	for _, c := range categories {
		if c == resume.AllCategories {
			m[c] = ""
			continue
		}
		m[c] = Palette[n%len(Palette)]
		n++
	}
	return m
}

// NewSkillsView derives categories, filters and orders skills, and builds
// one bar per remaining skill.
func NewSkillsView(skills []resume.Skill, selected, base string) SkillsView {
	if selected == "" {
		selected = resume.AllCategories
	}

	categories := resume.Categories(skills)
	colors := ColorMap(categories)
	state := DefaultState()

	v := SkillsView{Selected: selected, Bars: []Bar{}}
	for _, c := range categories {
		v.Categories = append(v.Categories, CategoryButton{
			Name:     c,
			Color:    colors[c],
			Selected: c == selected,
			URL:      state.Select(c).URL(base),
		})
	}

	for _, s := range resume.FilterSkills(skills, selected) {
		v.Bars = append(v.Bars, Bar{
			Title:       strings.ReplaceAll(s.Title, " ", "\u00a0"),
			Category:    s.Category,
			Proficiency: Level(s.Proficiency),
			Width:       Width(s.Proficiency),
			Color:       colors[s.Category],
			Label:       fmt.Sprintf("%d/%d", Level(s.Proficiency), resume.MaxProficiency),
		})
	}
	return v
}
