package catalog

import (
	"fmt"
	"strings"

	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

// Defect describes one content problem in a catalog record.
type Defect struct {
	Index   int
	Key     domain.Key
	Message string
}

func (d Defect) String() string {
	return fmt.Sprintf("#%d %s/%s: %s", d.Index, d.Key.Type, d.Key.Slug, d.Message)
}

// ValidationError collects every defect found by Validate.
type ValidationError struct {
	Defects []Defect
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Defects))
	for _, d := range e.Defects {
		parts = append(parts, d.String())
	}
	return fmt.Sprintf("catalog has %d defect(s): %s", len(e.Defects), strings.Join(parts, "; "))
}

// Validate checks required fields, the type enum and (type, slug) uniqueness.
// Lookups keep first-match semantics regardless of the result; this is a
// content check for authors, not a load gate.
func (c *Catalog) Validate() error {
	var defects []Defect
	seen := make(map[domain.Key]int, len(c.projects))

	for i, p := range c.projects {
		add := func(msg string) {
			defects = append(defects, Defect{Index: i, Key: p.Key(), Message: msg})
		}

		if !p.Type.Valid() {
			add(fmt.Sprintf("unknown type %q", p.Type))
		}
		if strings.TrimSpace(p.Slug) == "" {
			add("slug is required")
		}
		if strings.TrimSpace(p.Title) == "" {
			add("title is required")
		}
		if strings.TrimSpace(p.Location) == "" {
			add("location is required")
		}
		if strings.TrimSpace(p.Image) == "" {
			add("image is required")
		}
		if len(p.Points) == 0 {
			add("at least one point is required")
		}
		if first, dup := seen[p.Key()]; dup {
			add(fmt.Sprintf("duplicate of record #%d", first))
		} else {
			seen[p.Key()] = i
		}
	}

	if len(defects) > 0 {
		return &ValidationError{Defects: defects}
	}
	return nil
}
