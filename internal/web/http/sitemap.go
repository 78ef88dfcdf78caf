package http

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vrgreentek/greentek-site/internal/projects/catalog"
)

var staticPaths = []string{"/", "/about", "/projects", "/solutions/solar", "/contact"}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemap lists the static pages and one entry per catalog record.
func (h *Handler) sitemap(c *gin.Context) {
	params := h.projects.Params()
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(staticPaths)+len(params)),
	}
	for _, p := range staticPaths {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + p})
	}
	for _, k := range params {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + catalog.Href(k)})
	}
	c.XML(http.StatusOK, set)
}
