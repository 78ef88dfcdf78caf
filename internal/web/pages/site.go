// Package pages composes full HTML documents from content and catalog data.
package pages

import (
	"github.com/vrgreentek/greentek-site/internal/content"
	"github.com/vrgreentek/greentek-site/internal/web/components"
)

func siteOf(cfg components.PageConfig) *content.Site {
	if cfg.Site != nil {
		return cfg.Site
	}
	return content.Default()
}
