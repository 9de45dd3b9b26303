package resume

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid wraps every problem reported by Validate.
var ErrInvalid = errors.New("invalid resume")

// Validate checks the document invariants: every skill has a non-empty
// category other than AllCategories and a proficiency within
// [0, MaxProficiency]. All problems are reported together.
func (r *Resume) Validate() error {
	var errs []error
	for i, s := range r.Skills {
		if strings.TrimSpace(s.Category) == "" {
			errs = append(errs, fmt.Errorf("skills[%d] %q: category is empty", i, s.Title))
		}
		if s.Category == AllCategories {
			errs = append(errs, fmt.Errorf("skills[%d] %q: category %q is reserved", i, s.Title, AllCategories))
		}
		if s.Proficiency < 0 || s.Proficiency > MaxProficiency {
			errs = append(errs, fmt.Errorf("skills[%d] %q: proficiency %d out of range [0,%d]", i, s.Title, s.Proficiency, MaxProficiency))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
