package service

import (
	"github.com/vrgreentek/greentek-site/internal/projects/catalog"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

// ProjectService answers portfolio queries against a catalog.
type ProjectService struct {
	catalog *catalog.Catalog
}

// NewProjectService creates a new project service
func NewProjectService(c *catalog.Catalog) *ProjectService {
	if c == nil {
		c = catalog.Default()
	}
	return &ProjectService{
		catalog: c,
	}
}

// Detail is everything the project page needs for one record.
type Detail struct {
	Project domain.Project   `json:"project"`
	Href    string           `json:"href"`
	Similar []domain.Project `json:"similar"`
}

// List returns every project, or one track when typ is non-empty.
func (s *ProjectService) List(typ domain.ProjectType) []domain.Project {
	if typ == "" {
		return s.catalog.All()
	}
	return s.catalog.ByType(typ)
}

// Get resolves a route segment pair. Invalid types and unknown slugs both
// report domain.ErrNotFound; callers render a not-found response.
func (s *ProjectService) Get(rawType, slug string) (*Detail, error) {
	typ, ok := domain.ParseType(rawType)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p, ok := s.catalog.Get(typ, slug)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &Detail{
		Project: p,
		Href:    catalog.ProjectHref(p),
		Similar: s.catalog.Similar(typ, slug),
	}, nil
}

// Featured returns the first limit cards of a track, in catalog order.
func (s *ProjectService) Featured(typ domain.ProjectType, limit int) []domain.Project {
	items := s.catalog.ByType(typ)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Params lists every detail route for sitemap style consumers.
func (s *ProjectService) Params() []domain.Key {
	return s.catalog.Params()
}
