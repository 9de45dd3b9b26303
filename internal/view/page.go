package view

import (
	"github.com/kalambet/folio/internal/download"
	"github.com/kalambet/folio/internal/resume"
)

// Page is everything the resume template needs for one request.
type Page struct {
	State         State
	OnSkills      bool
	SkillsURL     string
	BackgroundURL string
	Skills        *SkillsView
	Background    *BackgroundView
}

// Projector turns a selection state into a Page. The background view does
// not depend on the state, so it is rendered once up front.
type Projector struct {
	base       string
	skills     []resume.Skill
	background BackgroundView
}

// NewProjector prepares page projection for r. base is the path the toggle
// and category links point at.
func NewProjector(r *resume.Resume, md *Markdown, dl download.Info, base string) *Projector {
	return &Projector{
		base:       base,
		skills:     r.Skills,
		background: NewBackgroundView(r, md, dl),
	}
}

// Page projects s. The toggle links always target the default selection of
// the other view.
func (p *Projector) Page(s State) Page {
	pg := Page{
		State:         s,
		OnSkills:      s.Mode == ModeSkills,
		SkillsURL:     State{Mode: ModeSkills, Category: resume.AllCategories}.URL(p.base),
		BackgroundURL: DefaultState().URL(p.base),
	}
	if pg.OnSkills {
		v := p.SkillsView(s.Category)
		pg.Skills = &v
	} else {
		bg := p.background
		pg.Background = &bg
	}
	return pg
}

// Skills returns the filtered, ordered skills for category.
func (p *Projector) Skills(category string) []resume.Skill {
	return resume.FilterSkills(p.skills, category)
}

// SkillsView projects the skills view for category.
func (p *Projector) SkillsView(category string) SkillsView {
	return NewSkillsView(p.skills, category, p.base)
}

// Background returns the pre-rendered background view.
func (p *Projector) Background() BackgroundView {
	return p.background
}

// Categories lists the derived categories with their colours.
func (p *Projector) Categories() []CategoryButton {
	return p.SkillsView(resume.AllCategories).Categories
}
