package catalog

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

func genType() gopter.Gen {
	return gen.OneConstOf(domain.TypeGreenEnergy, domain.TypeElectrical, domain.ProjectType("wind"))
}

func genSlug() gopter.Gen {
	return gen.OneConstOf("a", "b", "c", "d", "e", "dripping-automation", "")
}

// genCatalog builds small catalogs with deliberately colliding slugs.
func genCatalog() gopter.Gen {
	return gen.SliceOfN(12, gopter.CombineGens(genType(), genSlug())).Map(func(pairs [][]interface{}) *Catalog {
		items := make([]domain.Project, 0, len(pairs))
		for i, pair := range pairs {
			items = append(items, domain.Project{
				Type:  pair[0].(domain.ProjectType),
				Slug:  pair[1].(string),
				Title: fmt.Sprintf("p%d", i),
			})
		}
		return New(items)
	})
}

func TestCatalogProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("get returns a record with the requested key or misses", prop.ForAll(
		func(c *Catalog, typ domain.ProjectType, slug string) bool {
			p, ok := c.Get(typ, slug)
			if !ok {
				for _, q := range c.All() {
					if q.Type == typ && q.Slug == slug {
						return false
					}
				}
				return true
			}
			return p.Type == typ && p.Slug == slug
		},
		genCatalog(), genType(), genSlug(),
	))

	properties.Property("get returns the first match", prop.ForAll(
		func(c *Catalog, typ domain.ProjectType, slug string) bool {
			p, ok := c.Get(typ, slug)
			if !ok {
				return true
			}
			for _, q := range c.All() {
				if q.Type == typ && q.Slug == slug {
					return q.Title == p.Title
				}
			}
			return false
		},
		genCatalog(), genType(), genSlug(),
	))

	properties.Property("similar excludes slug, shares type, caps at three", prop.ForAll(
		func(c *Catalog, typ domain.ProjectType, slug string) bool {
			got := c.Similar(typ, slug)
			if len(got) > 3 {
				return false
			}
			for _, p := range got {
				if p.Slug == slug || p.Type != typ {
					return false
				}
			}
			return true
		},
		genCatalog(), genType(), genSlug(),
	))

	properties.Property("similar is a prefix of the filtered catalog", prop.ForAll(
		func(c *Catalog, typ domain.ProjectType, slug string) bool {
			var want []domain.Project
			for _, p := range c.All() {
				if p.Type == typ && p.Slug != slug {
					want = append(want, p)
				}
			}
			if len(want) > 3 {
				want = want[:3]
			}
			got := c.Similar(typ, slug)
			if len(got) != len(want) {
				return false
			}
			for i := range got {
				if got[i].Title != want[i].Title {
					return false
				}
			}
			return true
		},
		genCatalog(), genType(), genSlug(),
	))

	properties.Property("href is /projects/{type}/{slug}", prop.ForAll(
		func(typ domain.ProjectType, slug string) bool {
			return Href(domain.Key{Type: typ, Slug: slug}) == "/projects/"+string(typ)+"/"+slug
		},
		genType(), gen.AlphaString(),
	))

	properties.TestingRun(t)
}
