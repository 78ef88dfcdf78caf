package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

// maxSimilar caps the "similar projects" list on the detail page.
const maxSimilar = 3

//go:embed projects.yaml
var projectsYAML []byte

// Catalog is an immutable, ordered list of portfolio projects.
// Lookups are linear scans; the catalog is small and never mutated after load,
// so a Catalog is safe for concurrent use.
type Catalog struct {
	projects []domain.Project
}

var defaultCatalog = mustLoadDefault()

func mustLoadDefault() *Catalog {
	c, err := Load(bytes.NewReader(projectsYAML))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded projects.yaml: %v", err))
	}
	return c
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog
}

// Load decodes a YAML list of projects. It only fails on malformed YAML;
// content defects are reported by Validate.
func Load(r io.Reader) (*Catalog, error) {
	var items []domain.Project
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&items); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(items), nil
}

// New builds a catalog from records in display order. Records are deep
// copied and every accessor hands out clones, so callers never share slices
// with the catalog.
func New(items []domain.Project) *Catalog {
	return &Catalog{projects: cloneAll(items)}
}

func cloneAll(items []domain.Project) []domain.Project {
	out := make([]domain.Project, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// All returns every record in catalog order.
func (c *Catalog) All() []domain.Project {
	return cloneAll(c.projects)
}

// ByType returns the records of one track in catalog order.
func (c *Catalog) ByType(t domain.ProjectType) []domain.Project {
	out := make([]domain.Project, 0, len(c.projects))
	for _, p := range c.projects {
		if p.Type == t {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Get returns the first record matching both type and slug.
// The boolean is false when nothing matches; a miss is not an error.
func (c *Catalog) Get(t domain.ProjectType, slug string) (domain.Project, bool) {
	for _, p := range c.projects {
		if p.Type == t && p.Slug == slug {
			return p.Clone(), true
		}
	}
	return domain.Project{}, false
}

// Similar returns up to three records of the same type whose slug differs,
// in catalog order.
func (c *Catalog) Similar(t domain.ProjectType, slug string) []domain.Project {
	out := make([]domain.Project, 0, maxSimilar)
	for _, p := range c.projects {
		if len(out) == maxSimilar {
			break
		}
		if p.Type == t && p.Slug != slug {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Params lists every (type, slug) pair, one per record, in catalog order.
func (c *Catalog) Params() []domain.Key {
	out := make([]domain.Key, 0, len(c.projects))
	for _, p := range c.projects {
		out = append(out, p.Key())
	}
	return out
}

// Href builds the canonical detail path. No escaping or validation is applied.
func Href(k domain.Key) string {
	return "/projects/" + string(k.Type) + "/" + k.Slug
}

// GetProject looks up a record in the default catalog.
func GetProject(t domain.ProjectType, slug string) (domain.Project, bool) {
	return defaultCatalog.Get(t, slug)
}

// GetSimilar lists similar records from the default catalog.
func GetSimilar(t domain.ProjectType, slug string) []domain.Project {
	return defaultCatalog.Similar(t, slug)
}

// ProjectHref is Href for a full record.
func ProjectHref(p domain.Project) string {
	return Href(p.Key())
}
