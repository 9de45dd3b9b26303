package resume

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a fresh collator. Collators keep internal buffers and
// must not be shared between goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// Categories returns the distinct skill categories in collation order with
// AllCategories prepended.
func Categories(skills []Skill) []string {
	seen := make(map[string]struct{}, len(skills))
	var names []string
	for _, s := range skills {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		names = append(names, s.Category)
	}

	c := newCollator()
	slices.SortFunc(names, func(a, b string) int {
		return compareText(c, a, b)
	})

	return append([]string{AllCategories}, names...)
}

// FilterSkills returns the skills in the selected category, or all of them
// when selected is AllCategories, ordered by proficiency (highest first),
// then category, then title. The input slice is left untouched.
func FilterSkills(skills []Skill, selected string) []Skill {
	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if selected == AllCategories || s.Category == selected {
			out = append(out, s)
		}
	}

	c := newCollator()
	slices.SortFunc(out, func(a, b Skill) int {
		return compareSkills(c, a, b)
	})
	return out
}

func compareSkills(c *collate.Collator, a, b Skill) int {
	if a.Proficiency != b.Proficiency {
		return b.Proficiency - a.Proficiency
	}
	if a.Category != b.Category {
		return compareText(c, a.Category, b.Category)
	}
	return compareText(c, a.Title, b.Title)
}

// compareText orders by collation and falls back to byte order so that two
// distinct strings never compare equal.
func compareText(c *collate.Collator, a, b string) int {
	if r := c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}
