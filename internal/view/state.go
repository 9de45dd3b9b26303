// Package view projects the resume and the current selection into the data
// the page templates render. Every function here is a pure projection.
package view

import (
	"net/url"

	"github.com/kalambet/folio/internal/resume"
)

// Mode selects which of the two resume views is shown.
type Mode string

const (
	ModeBackground Mode = "background"
	ModeSkills     Mode = "skills"
)

// State is the per-request selection: the active view and, on the skills
// view, the selected category.
type State struct {
	Mode     Mode
	Category string
}

// DefaultState is the background view with every category selected.
func DefaultState() State {
	return State{Mode: ModeBackground, Category: resume.AllCategories}
}

// ParseState reads the view and category query parameters. Anything
// unrecognised falls back to the default state's values.
func ParseState(q url.Values) State {
	s := DefaultState()
	if Mode(q.Get("view")) == ModeSkills {
		s.Mode = ModeSkills
	}
	if c := q.Get("category"); c != "" && s.Mode == ModeSkills {
		s.Category = c
	}
	return s
}

// Toggle switches to the other view and drops the category selection.
func (s State) Toggle() State {
	next := DefaultState()
	if s.Mode != ModeSkills {
		next.Mode = ModeSkills
	}
	return next
}

// Select picks a category on the skills view.
func (s State) Select(category string) State {
	return State{Mode: ModeSkills, Category: category}
}

// URL renders the state as a link relative to base.
func (s State) URL(base string) string {
	q := url.Values{}
	q.Set("view", string(s.Mode))
	if s.Mode == ModeSkills && s.Category != resume.AllCategories && s.Category != "" {
		q.Set("category", s.Category)
	}
	return base + "?" + q.Encode()
}
