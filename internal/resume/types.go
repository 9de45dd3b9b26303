// Package resume holds the resume document model and the pure functions that
// derive skill categories and the filtered, ordered skill list from it.
package resume

// MaxProficiency is the top of the proficiency scale. The bottom is zero.
const MaxProficiency = 5

// AllCategories is the synthetic category that selects every skill.
const AllCategories = "All"

type Skill struct {
	Title       string `json:"title" yaml:"title"`
	Category    string `json:"category" yaml:"category"`
	Proficiency int    `json:"proficiency" yaml:"proficiency"`
}

// ContentItem is a titled entry with a markdown description and an optional
// link. Work, research and language entries are content items.
type ContentItem struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

type Degree struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type EducationItem struct {
	ContentItem `yaml:",inline"`
	Degrees     []Degree `json:"degrees" yaml:"degrees"`
}

// Resume is the whole document. It is loaded once and never mutated.
type Resume struct {
	Skills    []Skill         `json:"skills" yaml:"skills"`
	Education []EducationItem `json:"education" yaml:"education"`
	Work      []ContentItem   `json:"work" yaml:"work"`
	Research  []ContentItem   `json:"research" yaml:"research"`
	Languages []ContentItem   `json:"languages" yaml:"languages"`
}
